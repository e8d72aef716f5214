package mdconverter

import (
	"github.com/yuin/goldmark/ast"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// convertList flattens a markdown list into one destination block per item.
// The destination has no list container; nesting lives on the items.
func (s *state) convertList(node *ast.List) ([]notion.Block, error) {
	var items []notion.Block

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		listItem, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}

		item, err := s.convertListItem(listItem, node.IsOrdered())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// convertListItem builds one item block: the first paragraph becomes the
// item's rich text and every following block nests as a child, so nested
// lists, code and further paragraphs stay under their item.
func (s *state) convertListItem(node *ast.ListItem, ordered bool) (notion.Block, error) {
	var spans []notion.RichText
	var children []notion.Block
	seenText := false

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			inline, err := s.convertInlineChildren(typed, format{})
			if err != nil {
				return notion.Block{}, err
			}
			inline = trimSpans(inline)
			if !seenText && len(children) == 0 {
				spans = inline
				seenText = true
				continue
			}
			if len(inline) > 0 {
				children = append(children, notion.NewParagraph(inline))
			}
		default:
			converted, err := s.convertBlockNode(child)
			if err != nil {
				return notion.Block{}, err
			}
			children = append(children, converted...)
		}
	}

	item := notion.NewBulletedListItem(spans)
	if ordered {
		item = notion.NewNumberedListItem(spans)
	}
	item.AppendChildren(children...)

	return item, nil
}
