package converter

import "github.com/jkrenek/zotero-notion-converter/notion"

// ParsedNode is the classification of a single DOM node. Exactly one
// concrete variant implements it; consumers switch over the set and treat a
// nil classification as a dropped node.
type ParsedNode interface {
	parsedNode()
}

// BlockNode classifies an element that maps to a destination block.
type BlockNode struct {
	Type notion.BlockType
	// Annotations seed the formatting of the block's own inline content.
	Annotations notion.Annotations
	Color       notion.Color
	// SupportsChildren separates parent blocks, which may nest further
	// blocks, from leaf blocks whose inline content is their whole payload.
	SupportsChildren bool
}

// ListNode classifies a list container. The container itself produces no
// block; the assembler re-reads its children as items.
type ListNode struct{}

// RichTextNode classifies an inline formatting element.
type RichTextNode struct {
	Annotations notion.Annotations
	Link        string
}

// TextNode classifies a non-empty DOM text node. Content keeps its
// whitespace; trimming happens once spans reach a block boundary.
type TextNode struct {
	Content string
}

// LineBreakNode classifies <br>.
type LineBreakNode struct{}

// InlineMathNode classifies an inline math expression. Expression is never
// empty.
type InlineMathNode struct {
	Expression string
}

// MathBlockNode classifies a display math expression. Expression is never
// empty.
type MathBlockNode struct {
	Expression string
}

func (BlockNode) parsedNode()      {}
func (ListNode) parsedNode()       {}
func (RichTextNode) parsedNode()   {}
func (TextNode) parsedNode()       {}
func (LineBreakNode) parsedNode()  {}
func (InlineMathNode) parsedNode() {}
func (MathBlockNode) parsedNode()  {}

// ContentResult is the outcome of converting one DOM child. Block content
// and inline content flow through different aggregation rules, so the
// variants stay distinct until a parent absorbs them.
type ContentResult interface {
	contentResult()
}

// BlockResult carries one finished block.
type BlockResult struct {
	Block notion.Block
}

// ListResult carries the flattened items of a list. Parents splice the
// blocks into their own sequence instead of nesting the list as one node.
type ListResult struct {
	Blocks []notion.Block
}

// RichTextResult carries inline spans that a parent must absorb. It never
// survives to the final output; top-level runs wrap into paragraphs.
type RichTextResult struct {
	RichText []notion.RichText
}

func (BlockResult) contentResult()    {}
func (ListResult) contentResult()     {}
func (RichTextResult) contentResult() {}
