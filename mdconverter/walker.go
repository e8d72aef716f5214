package mdconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

func (s *state) convertBlockChildren(parent ast.Node) ([]notion.Block, error) {
	var blocks []notion.Block

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if err := s.checkContext(); err != nil {
			return nil, err
		}

		converted, err := s.convertBlockNode(child)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, converted...)
	}

	return blocks, nil
}

// convertBlockNode maps one markdown block node to its destination blocks.
// Lists flatten into one block per item; nodes with nothing to contribute
// return none.
func (s *state) convertBlockNode(node ast.Node) ([]notion.Block, error) {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return s.convertParagraph(typed)
	case *ast.TextBlock:
		return s.convertTextBlock(typed)
	case *ast.Heading:
		return s.convertHeading(typed)
	case *ast.Blockquote:
		return s.convertBlockquote(typed)
	case *ast.ThematicBreak:
		return []notion.Block{notion.NewDivider()}, nil
	case *ast.FencedCodeBlock:
		return s.convertFencedCode(typed)
	case *ast.CodeBlock:
		return s.convertIndentedCode(typed)
	case *ast.List:
		return s.convertList(typed)
	case *ast.HTMLBlock:
		s.log.Debug("dropping raw html block")
		return nil, nil
	default:
		textValue := strings.TrimSpace(plainText(node, s.source))
		if textValue == "" {
			return nil, nil
		}
		s.log.Warn("unsupported markdown block node",
			zap.String("kind", node.Kind().String()))
		return []notion.Block{
			notion.NewParagraph([]notion.RichText{notion.NewText(textValue)}),
		}, nil
	}
}

// plainText flattens a node's inline descendants into the text they carry.
// Degradation paths use it for nodes without a structural mapping.
func plainText(node ast.Node, source []byte) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Text:
			sb.Write(typed.Value(source))
			if typed.SoftLineBreak() || typed.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(typed.Value)
		default:
			sb.WriteString(plainText(child, source))
		}
	}
	return sb.String()
}
