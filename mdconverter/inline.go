package mdconverter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

var httpPattern = regexp.MustCompile(`^https?://`)

// format carries the formatting inherited from enclosing inline nodes down
// the recursion. It is passed by value so siblings never see each other's
// state.
type format struct {
	annotations notion.Annotations
	link        string
}

func (s *state) convertInlineChildren(parent ast.Node, f format) ([]notion.RichText, error) {
	var spans []notion.RichText

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		// Raw HTML toggles formatting for the siblings that follow it, so it
		// is handled here rather than in the recursion.
		if raw, ok := child.(*ast.RawHTML); ok {
			switch tag := rawTag(raw, s.source); tag {
			case "<br>", "<br/>":
				spans = appendSpan(spans, newSpan("\n", f))
			case "<u>":
				f.annotations.Underline = true
			case "</u>":
				f.annotations.Underline = false
			default:
				s.log.Debug("dropping raw inline html", zap.String("tag", tag))
			}
			continue
		}

		converted, err := s.convertInlineNode(child, f)
		if err != nil {
			return nil, err
		}
		for _, span := range converted {
			spans = appendSpan(spans, span)
		}
	}

	return spans, nil
}

func (s *state) convertInlineNode(node ast.Node, f format) ([]notion.RichText, error) {
	switch typed := node.(type) {
	case *ast.Text:
		var spans []notion.RichText
		if value := string(typed.Value(s.source)); value != "" {
			spans = append(spans, newSpan(value, f))
		}

		if typed.HardLineBreak() {
			spans = append(spans, newSpan("\n", f))
		} else if typed.SoftLineBreak() {
			spans = append(spans, newSpan(" ", f))
		}

		return spans, nil

	case *ast.String:
		return []notion.RichText{newSpan(string(typed.Value), f)}, nil

	case *ast.Emphasis:
		if typed.Level >= 2 {
			f.annotations.Bold = true
		} else {
			f.annotations.Italic = true
		}
		return s.convertInlineChildren(typed, f)

	case *extast.Strikethrough:
		f.annotations.Strikethrough = true
		return s.convertInlineChildren(typed, f)

	case *ast.CodeSpan:
		f.annotations.Code = true
		return s.convertInlineChildren(typed, f)

	case *ast.Link:
		if href := strings.TrimSpace(string(typed.Destination)); httpPattern.MatchString(href) {
			f.link = href
		}
		return s.convertInlineChildren(typed, f)

	case *ast.AutoLink:
		url := strings.TrimSpace(string(typed.URL(s.source)))
		if typed.AutoLinkType == ast.AutoLinkURL && httpPattern.MatchString(url) {
			f.link = url
		}
		return []notion.RichText{newSpan(string(typed.Label(s.source)), f)}, nil

	case *ast.Image:
		// An image mixed into text cannot become a block here; its alt text
		// stands in, linked to the source when that is hosted.
		destination := strings.TrimSpace(string(typed.Destination))
		alt := strings.TrimSpace(plainText(typed, s.source))
		if alt == "" {
			alt = destination
		}
		if alt == "" {
			return nil, nil
		}
		if httpPattern.MatchString(destination) {
			f.link = destination
		}
		return []notion.RichText{newSpan(alt, f)}, nil

	case *extast.TaskCheckBox:
		// The destination has no checkbox span; the item text stands alone.
		return nil, nil

	default:
		if node.HasChildren() {
			return s.convertInlineChildren(node, f)
		}

		value := strings.TrimSpace(plainText(node, s.source))
		if value == "" {
			return nil, nil
		}
		s.log.Warn("unsupported markdown inline node",
			zap.String("kind", node.Kind().String()))
		return []notion.RichText{newSpan(value, f)}, nil
	}
}

func newSpan(content string, f format) notion.RichText {
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

// appendSpan appends a span, merging it into the previous one when both are
// text with identical formatting. Empty spans are dropped and line break
// spans never merge.
func appendSpan(spans []notion.RichText, next notion.RichText) []notion.RichText {
	if next.Type == notion.RichTextText && next.Text.Content == "" {
		return spans
	}
	if len(spans) > 0 {
		last := &spans[len(spans)-1]
		if sameStyle(*last, next) && last.Text.Content != "\n" && next.Text.Content != "\n" {
			last.Text = &notion.Text{
				Content: last.Text.Content + next.Text.Content,
				Link:    last.Text.Link,
			}
			return spans
		}
	}
	return append(spans, next)
}

func sameStyle(a, b notion.RichText) bool {
	if a.Type != notion.RichTextText || b.Type != notion.RichTextText {
		return false
	}
	return a.AnnotationsOrZero() == b.AnnotationsOrZero() && a.LinkURL() == b.LinkURL()
}

// trimSpans trims leading whitespace off the first span and trailing
// whitespace off the last, dropping spans the trim empties. Line break spans
// keep their content verbatim.
func trimSpans(spans []notion.RichText) []notion.RichText {
	if len(spans) == 0 {
		return spans
	}

	trimmed := make([]notion.RichText, 0, len(spans))
	for i, span := range spans {
		if span.Type == notion.RichTextText && span.Text.Content != "\n" {
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

// rawTag normalizes a raw inline HTML fragment for tag matching.
func rawTag(node *ast.RawHTML, source []byte) string {
	var sb strings.Builder
	for i := 0; i < node.Segments.Len(); i++ {
		segment := node.Segments.At(i)
		sb.Write(segment.Value(source))
	}
	tag := strings.ToLower(strings.TrimSpace(sb.String()))
	return strings.ReplaceAll(tag, " ", "")
}
