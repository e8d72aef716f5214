// Package notion models the destination block API: typed blocks, rich text
// spans, and the per-request partitioning limit. Block values marshal to the
// JSON shape the block append endpoint accepts.
package notion

import "strings"

// BlockType identifies a block variant.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockQuote            BlockType = "quote"
	BlockCode             BlockType = "code"
	BlockCallout          BlockType = "callout"
	BlockDivider          BlockType = "divider"
	BlockEquation         BlockType = "equation"
	BlockImage            BlockType = "image"
)

// IsListItem reports whether the type is a list item variant.
func (t BlockType) IsListItem() bool {
	return strings.HasSuffix(string(t), "list_item")
}

// Block is a typed node of the destination document model. Exactly one value
// field matching Type is set.
type Block struct {
	Type             BlockType      `json:"type"`
	Paragraph        *TextValue     `json:"paragraph,omitempty"`
	Heading1         *HeadingValue  `json:"heading_1,omitempty"`
	Heading2         *HeadingValue  `json:"heading_2,omitempty"`
	Heading3         *HeadingValue  `json:"heading_3,omitempty"`
	BulletedListItem *TextValue     `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextValue     `json:"numbered_list_item,omitempty"`
	Quote            *TextValue     `json:"quote,omitempty"`
	Code             *CodeValue     `json:"code,omitempty"`
	Callout          *CalloutValue  `json:"callout,omitempty"`
	Divider          *DividerValue  `json:"divider,omitempty"`
	Equation         *EquationValue `json:"equation,omitempty"`
	Image            *ImageValue    `json:"image,omitempty"`
}

// TextValue is the shared value shape of paragraph, quote and list item
// blocks.
type TextValue struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// HeadingValue is the value shape of heading blocks. Headings only accept
// children when toggleable.
type HeadingValue struct {
	RichText     []RichText `json:"rich_text"`
	Color        Color      `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable,omitempty"`
	Children     []Block    `json:"children,omitempty"`
}

// CodeValue is the value shape of code blocks. The destination has no color
// slot here.
type CodeValue struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

// CalloutValue is the value shape of callout blocks.
type CalloutValue struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// DividerValue is intentionally empty; it marshals to {}.
type DividerValue struct{}

// EquationValue is the value shape of display equation blocks.
type EquationValue struct {
	Expression string `json:"expression"`
}

// ImageValue references an externally hosted image.
type ImageValue struct {
	Type     string        `json:"type"`
	External *ExternalFile `json:"external,omitempty"`
}

// ExternalFile is a URL the destination fetches rather than stores.
type ExternalFile struct {
	URL string `json:"url"`
}

// Icon is an emoji block icon.
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// PlainTextLanguage is the code block language the destination uses when the
// source declares none.
const PlainTextLanguage = "plain text"

func nonNil(richText []RichText) []RichText {
	if richText == nil {
		return []RichText{}
	}
	return richText
}

// NewParagraph returns a paragraph block.
func NewParagraph(richText []RichText) Block {
	return Block{
		Type:      BlockParagraph,
		Paragraph: &TextValue{RichText: nonNil(richText)},
	}
}

// NewHeading returns a heading block. Levels outside 1..3 clamp to the
// nearest supported level.
func NewHeading(level int, richText []RichText) Block {
	value := &HeadingValue{RichText: nonNil(richText)}
	switch {
	case level <= 1:
		return Block{Type: BlockHeading1, Heading1: value}
	case level == 2:
		return Block{Type: BlockHeading2, Heading2: value}
	default:
		return Block{Type: BlockHeading3, Heading3: value}
	}
}

// NewToggleHeading returns a toggleable heading block, the only heading form
// that accepts children.
func NewToggleHeading(level int, richText []RichText) Block {
	block := NewHeading(level, richText)
	block.headingValue().IsToggleable = true
	return block
}

// NewBulletedListItem returns a bulleted list item block.
func NewBulletedListItem(richText []RichText) Block {
	return Block{
		Type:             BlockBulletedListItem,
		BulletedListItem: &TextValue{RichText: nonNil(richText)},
	}
}

// NewNumberedListItem returns a numbered list item block.
func NewNumberedListItem(richText []RichText) Block {
	return Block{
		Type:             BlockNumberedListItem,
		NumberedListItem: &TextValue{RichText: nonNil(richText)},
	}
}

// NewQuote returns a quote block.
func NewQuote(richText []RichText) Block {
	return Block{
		Type:  BlockQuote,
		Quote: &TextValue{RichText: nonNil(richText)},
	}
}

// NewCode returns a code block. An empty language falls back to
// PlainTextLanguage.
func NewCode(richText []RichText, language string) Block {
	if language == "" {
		language = PlainTextLanguage
	}
	return Block{
		Type: BlockCode,
		Code: &CodeValue{RichText: nonNil(richText), Language: language},
	}
}

// NewCallout returns a callout block with an emoji icon.
func NewCallout(richText []RichText, emoji string, color Color) Block {
	value := &CalloutValue{RichText: nonNil(richText), Color: color}
	if emoji != "" {
		value.Icon = &Icon{Type: "emoji", Emoji: emoji}
	}
	return Block{Type: BlockCallout, Callout: value}
}

// NewDivider returns a divider block.
func NewDivider() Block {
	return Block{Type: BlockDivider, Divider: &DividerValue{}}
}

// NewEquationBlock returns a display equation block.
func NewEquationBlock(expression string) Block {
	return Block{Type: BlockEquation, Equation: &EquationValue{Expression: expression}}
}

// NewExternalImage returns an image block referencing a hosted URL.
func NewExternalImage(url string) Block {
	return Block{
		Type:  BlockImage,
		Image: &ImageValue{Type: "external", External: &ExternalFile{URL: url}},
	}
}

func (b Block) headingValue() *HeadingValue {
	switch b.Type {
	case BlockHeading1:
		return b.Heading1
	case BlockHeading2:
		return b.Heading2
	case BlockHeading3:
		return b.Heading3
	default:
		return nil
	}
}

func (b Block) textValue() *TextValue {
	switch b.Type {
	case BlockParagraph:
		return b.Paragraph
	case BlockBulletedListItem:
		return b.BulletedListItem
	case BlockNumberedListItem:
		return b.NumberedListItem
	case BlockQuote:
		return b.Quote
	default:
		return nil
	}
}

// RichText returns the block's own rich text, or nil for types without any.
func (b Block) RichText() []RichText {
	if value := b.textValue(); value != nil {
		return value.RichText
	}
	if value := b.headingValue(); value != nil {
		return value.RichText
	}
	switch b.Type {
	case BlockCode:
		if b.Code != nil {
			return b.Code.RichText
		}
	case BlockCallout:
		if b.Callout != nil {
			return b.Callout.RichText
		}
	}
	return nil
}

// Children returns nested child blocks, or nil for leaf types.
func (b Block) Children() []Block {
	if value := b.textValue(); value != nil {
		return value.Children
	}
	if value := b.headingValue(); value != nil {
		return value.Children
	}
	if b.Type == BlockCallout && b.Callout != nil {
		return b.Callout.Children
	}
	return nil
}

// AppendChildren nests blocks under b. Types without a children slot drop
// them silently.
func (b *Block) AppendChildren(children ...Block) {
	if len(children) == 0 {
		return
	}
	if value := b.textValue(); value != nil {
		value.Children = append(value.Children, children...)
		return
	}
	if value := b.headingValue(); value != nil {
		value.Children = append(value.Children, children...)
		return
	}
	if b.Type == BlockCallout && b.Callout != nil {
		b.Callout.Children = append(b.Callout.Children, children...)
	}
}

// SetColor assigns the block color. Types without a color slot (code,
// divider, equation, image) drop it silently.
func (b *Block) SetColor(color Color) {
	if color == "" {
		return
	}
	if value := b.textValue(); value != nil {
		value.Color = color
		return
	}
	if value := b.headingValue(); value != nil {
		value.Color = color
		return
	}
	if b.Type == BlockCallout && b.Callout != nil {
		b.Callout.Color = color
	}
}

// BlockColor returns the block color, or empty for types without one.
func (b Block) BlockColor() Color {
	if value := b.textValue(); value != nil {
		return value.Color
	}
	if value := b.headingValue(); value != nil {
		return value.Color
	}
	if b.Type == BlockCallout && b.Callout != nil {
		return b.Callout.Color
	}
	return ""
}
