package converter

import "github.com/jkrenek/zotero-notion-converter/notion"

// convertNodes reduces a sequence of sibling DOM nodes to blocks. Inline
// runs between blocks accumulate and wrap into synthesized paragraphs, so no
// bare rich text escapes.
func (s *state) convertNodes(nodes []Node) []notion.Block {
	var blocks []notion.Block
	var pending []notion.RichText

	flush := func() {
		if paragraph, ok := paragraphFromRichText(pending); ok {
			blocks = append(blocks, paragraph)
		}
		pending = nil
	}

	for _, n := range nodes {
		for _, result := range s.convertNode(n, format{}) {
			switch r := result.(type) {
			case RichTextResult:
				for _, span := range r.RichText {
					pending = appendRichText(pending, span)
				}
			case BlockResult:
				flush()
				blocks = append(blocks, r.Block)
			case ListResult:
				flush()
				blocks = append(blocks, r.Blocks...)
			}
		}
	}
	flush()

	return blocks
}

// convertNode converts one DOM node into content results. Inline results
// carry the inherited formatting f; nested blocks derive formatting from
// their own attributes instead.
func (s *state) convertNode(n Node, f format) []ContentResult {
	switch parsed := classifyNode(n).(type) {
	case nil:
		return nil

	case BlockNode:
		return []ContentResult{BlockResult{Block: s.convertBlock(parsed, n)}}

	case ListNode:
		items := s.convertList(n)
		if len(items) == 0 {
			return nil
		}
		return []ContentResult{ListResult{Blocks: items}}

	case MathBlockNode:
		return []ContentResult{BlockResult{Block: notion.NewEquationBlock(parsed.Expression)}}

	case TextNode:
		return richTextResult([]notion.RichText{newTextSpan(parsed.Content, f)})

	case LineBreakNode:
		return richTextResult([]notion.RichText{newTextSpan("\n", f)})

	case InlineMathNode:
		return richTextResult([]notion.RichText{notion.NewEquationSpan(parsed.Expression)})

	case RichTextNode:
		return richTextResult(buildRichText(n.Children(), f.with(parsed)))

	default:
		return nil
	}
}

func richTextResult(spans []notion.RichText) []ContentResult {
	if len(spans) == 0 {
		return nil
	}
	return []ContentResult{RichTextResult{RichText: spans}}
}

// convertBlock builds one block from a classified element. Leading inline
// results become the block's own rich text; everything after the first
// nested block becomes children.
func (s *state) convertBlock(parsed BlockNode, n Node) notion.Block {
	if !parsed.SupportsChildren {
		return s.convertLeafBlock(parsed, n)
	}

	var richText []notion.RichText
	var children []notion.Block
	leadingText := true
	childFormat := format{annotations: parsed.Annotations}

	for _, child := range n.Children() {
		for _, result := range s.convertNode(child, childFormat) {
			switch r := result.(type) {
			case RichTextResult:
				if leadingText {
					for _, span := range r.RichText {
						richText = appendRichText(richText, span)
					}
					continue
				}
				if paragraph, ok := paragraphFromRichText(r.RichText); ok {
					children = append(children, paragraph)
				}

			case BlockResult:
				if len(richText) == 0 && len(children) == 0 && isTrivialParagraph(r.Block) {
					// Promotion: hoist the lone wrapped paragraph's text
					// instead of nesting a block that adds no structure.
					richText = r.Block.Paragraph.RichText
					continue
				}
				children = append(children, r.Block)
				leadingText = false

			case ListResult:
				children = append(children, r.Blocks...)
				leadingText = false
			}
		}
	}

	block := newParentBlock(parsed.Type, trimRichText(richText))
	block.AppendChildren(children...)
	block.SetColor(parsed.Color)
	return block
}

// convertLeafBlock builds a block whose inline content is its whole payload.
// Code keeps whitespace verbatim; headings trim like other text blocks.
func (s *state) convertLeafBlock(parsed BlockNode, n Node) notion.Block {
	spans := buildRichText(n.Children(), format{annotations: parsed.Annotations})

	if parsed.Type == notion.BlockCode {
		return notion.NewCode(spans, notion.PlainTextLanguage)
	}

	block := notion.NewHeading(headingLevel(parsed.Type), trimRichText(spans))
	block.SetColor(parsed.Color)
	return block
}

func headingLevel(blockType notion.BlockType) int {
	switch blockType {
	case notion.BlockHeading1:
		return 1
	case notion.BlockHeading2:
		return 2
	default:
		return 3
	}
}

// isTrivialParagraph is the promotion predicate: a paragraph that carries
// only rich text, with no children and no color, adds no structure over its
// content.
func isTrivialParagraph(b notion.Block) bool {
	return b.Type == notion.BlockParagraph &&
		b.Paragraph != nil &&
		len(b.Paragraph.Children) == 0 &&
		b.Paragraph.Color == ""
}

// paragraphFromRichText wraps trimmed spans into a paragraph, reporting
// false when trimming leaves nothing.
func paragraphFromRichText(spans []notion.RichText) (notion.Block, bool) {
	trimmed := trimRichText(spans)
	if len(trimmed) == 0 {
		return notion.Block{}, false
	}
	return notion.NewParagraph(trimmed), true
}

func newParentBlock(blockType notion.BlockType, richText []notion.RichText) notion.Block {
	switch blockType {
	case notion.BlockQuote:
		return notion.NewQuote(richText)
	case notion.BlockBulletedListItem:
		return notion.NewBulletedListItem(richText)
	case notion.BlockNumberedListItem:
		return notion.NewNumberedListItem(richText)
	default:
		return notion.NewParagraph(richText)
	}
}
