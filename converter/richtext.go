package converter

import (
	"strings"
	"unicode"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// format carries the formatting inherited from enclosing inline elements
// down the recursion. It is passed by value so siblings never see each
// other's state.
type format struct {
	annotations notion.Annotations
	link        string
}

// with layers an inline element's own formatting over the inherited one.
// The innermost link wins.
func (f format) with(parsed RichTextNode) format {
	next := format{
		annotations: f.annotations.Merge(parsed.Annotations),
		link:        f.link,
	}
	if parsed.Link != "" {
		next.link = parsed.Link
	}
	return next
}

// buildRichText flattens the inline content of nodes into rich text spans,
// applying inherited formatting to every text descendant. Adjacent spans
// with identical formatting collapse into one.
func buildRichText(nodes []Node, f format) []notion.RichText {
	var spans []notion.RichText

	for _, n := range nodes {
		switch parsed := classifyNode(n).(type) {
		case nil:

		case TextNode:
			spans = appendRichText(spans, newTextSpan(parsed.Content, f))

		case LineBreakNode:
			spans = appendRichText(spans, newTextSpan("\n", f))

		case RichTextNode:
			for _, span := range buildRichText(n.Children(), f.with(parsed)) {
				spans = appendRichText(spans, span)
			}

		case InlineMathNode:
			spans = append(spans, notion.NewEquationSpan(parsed.Expression))

		case MathBlockNode:
			spans = append(spans, notion.NewEquationSpan(parsed.Expression))

		case BlockNode, ListNode:
			// Degenerate nesting: a block container inside an inline run
			// contributes its inline content in place.
			for _, span := range buildRichText(n.Children(), f) {
				spans = appendRichText(spans, span)
			}
		}
	}

	return spans
}

func newTextSpan(content string, f format) notion.RichText {
	span := notion.NewText(content)
	if f.link != "" {
		span.Text.Link = &notion.Link{URL: f.link}
	}
	if !f.annotations.IsZero() {
		annotations := f.annotations
		span.Annotations = &annotations
	}
	return span
}

// appendRichText appends a span, merging it into the previous one when both
// are text with identical formatting. Empty text spans are dropped. Literal
// line break spans never merge, so they survive trimming intact.
func appendRichText(spans []notion.RichText, next notion.RichText) []notion.RichText {
	if next.Type == notion.RichTextText && next.Text.Content == "" {
		return spans
	}
	if len(spans) > 0 {
		last := &spans[len(spans)-1]
		if sameTextStyle(*last, next) && !isLineBreakSpan(*last) && !isLineBreakSpan(next) {
			last.Text = &notion.Text{
				Content: last.Text.Content + next.Text.Content,
				Link:    last.Text.Link,
			}
			return spans
		}
	}
	return append(spans, next)
}

func sameTextStyle(a, b notion.RichText) bool {
	if a.Type != notion.RichTextText || b.Type != notion.RichTextText {
		return false
	}
	return a.AnnotationsOrZero() == b.AnnotationsOrZero() && a.LinkURL() == b.LinkURL()
}

// isLineBreakSpan reports a span holding exactly one literal line break.
// Whitespace-only text nodes never classify, so such spans only come from
// <br>.
func isLineBreakSpan(span notion.RichText) bool {
	return span.Type == notion.RichTextText && span.Text.Content == "\n"
}

// trimRichText trims leading whitespace off the first span and trailing
// whitespace off the last, dropping spans the trim empties. Interior spans,
// equation spans and line break spans keep their content verbatim.
func trimRichText(spans []notion.RichText) []notion.RichText {
	if len(spans) == 0 {
		return spans
	}

	trimmed := make([]notion.RichText, 0, len(spans))
	for i, span := range spans {
		if span.Type == notion.RichTextText && !isLineBreakSpan(span) {
			content := span.Text.Content
			if i == 0 {
				content = strings.TrimLeftFunc(content, unicode.IsSpace)
			}
			if i == len(spans)-1 {
				content = strings.TrimRightFunc(content, unicode.IsSpace)
			}
			if content != span.Text.Content {
				span.Text = &notion.Text{Content: content, Link: span.Text.Link}
			}
			if content == "" {
				continue
			}
		}
		trimmed = append(trimmed, span)
	}

	return trimmed
}
