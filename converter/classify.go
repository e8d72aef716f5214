package converter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

const (
	classHighlight = "highlight"
	classCitation  = "citation"
	classMath      = "math"
)

var (
	externalLinkPattern = regexp.MustCompile(`^https?://`)
	mathPattern         = regexp.MustCompile(`(?s)^\$\$?(.+?)\$\$?$`)
)

// inlineTagAnnotations maps formatting tags to the annotation they toggle.
var inlineTagAnnotations = map[string]notion.Annotations{
	"b":      {Bold: true},
	"strong": {Bold: true},
	"i":      {Italic: true},
	"em":     {Italic: true},
	"s":      {Strikethrough: true},
	"del":    {Strikethrough: true},
	"strike": {Strikethrough: true},
	"u":      {Underline: true},
	"code":   {Code: true},
	"tt":     {Code: true},
}

// classifyNode maps a DOM node to its ParsedNode variant. A nil return drops
// the node and its subtree from the output. Unknown elements classify as
// plain inline content so their text survives.
func classifyNode(n Node) ParsedNode {
	if n.Kind() == KindText {
		content := n.Text()
		if strings.TrimSpace(content) == "" {
			return nil
		}
		return TextNode{Content: content}
	}

	// Annotation markers outrank tag rules. The highlight color here is a
	// placeholder; the annotation path re-resolves the exact source color.
	if n.HasClass(classHighlight) {
		return RichTextNode{Annotations: notion.Annotations{Color: notion.ColorYellowBackground}}
	}
	if n.HasClass(classCitation) {
		return RichTextNode{}
	}

	switch n.Tag() {
	case "a":
		parsed := RichTextNode{Annotations: annotationsFromNode(n)}
		if href := n.Attr("href"); externalLinkPattern.MatchString(href) {
			parsed.Link = href
		}
		return parsed

	case "p", "div", "body":
		return blockNode(n, notion.BlockParagraph, true)

	case "blockquote":
		return blockNode(n, notion.BlockQuote, true)

	case "h1":
		return blockNode(n, notion.BlockHeading1, false)
	case "h2":
		return blockNode(n, notion.BlockHeading2, false)
	case "h3", "h4", "h5", "h6":
		// The destination supports three heading levels.
		return blockNode(n, notion.BlockHeading3, false)

	case "ul", "ol":
		return ListNode{}

	case "li":
		return blockNode(n, listItemType(n), true)

	case "pre":
		if expression, ok := mathExpression(n); ok {
			return MathBlockNode{Expression: expression}
		}
		return blockNode(n, notion.BlockCode, false)

	case "br":
		return LineBreakNode{}

	case "span":
		if expression, ok := mathExpression(n); ok {
			return InlineMathNode{Expression: expression}
		}
		return RichTextNode{Annotations: annotationsFromNode(n)}

	default:
		return RichTextNode{Annotations: annotationsFromNode(n)}
	}
}

func blockNode(n Node, blockType notion.BlockType, supportsChildren bool) BlockNode {
	return BlockNode{
		Type:             blockType,
		Annotations:      annotationsFromNode(n),
		Color:            blockColorFromNode(n),
		SupportsChildren: supportsChildren,
	}
}

// listItemType infers the item variant from the enclosing list tag. Items
// outside any list degrade to plain paragraphs.
func listItemType(n Node) notion.BlockType {
	parent := n.Parent()
	if parent == nil {
		return notion.BlockParagraph
	}
	switch parent.Tag() {
	case "ol":
		return notion.BlockNumberedListItem
	case "ul":
		return notion.BlockBulletedListItem
	default:
		return notion.BlockParagraph
	}
}

// mathExpression extracts a $-delimited expression from an element carrying
// the math class. Bare delimiters never match.
func mathExpression(n Node) (string, bool) {
	if !n.HasClass(classMath) {
		return "", false
	}
	match := mathPattern.FindStringSubmatch(strings.TrimSpace(n.Text()))
	if match == nil {
		return "", false
	}
	return match[1], true
}

// annotationsFromNode derives formatting from the element tag and its inline
// style. Unrecognized style values contribute nothing.
func annotationsFromNode(n Node) notion.Annotations {
	a := inlineTagAnnotations[n.Tag()]

	if isBoldWeight(n.Style("font-weight")) {
		a.Bold = true
	}
	if strings.EqualFold(n.Style("font-style"), "italic") {
		a.Italic = true
	}
	decoration := strings.ToLower(n.Style("text-decoration"))
	if strings.Contains(decoration, "line-through") {
		a.Strikethrough = true
	}
	if strings.Contains(decoration, "underline") {
		a.Underline = true
	}
	if token, ok := backgroundColorToken(n.Style("background-color")); ok {
		a.Color = token
	}

	return a
}

func blockColorFromNode(n Node) notion.Color {
	token, _ := backgroundColorToken(n.Style("background-color"))
	return token
}

func isBoldWeight(weight string) bool {
	weight = strings.TrimSpace(weight)
	if strings.EqualFold(weight, "bold") || strings.EqualFold(weight, "bolder") {
		return true
	}
	numeric, err := strconv.Atoi(weight)
	return err == nil && numeric >= 700
}
