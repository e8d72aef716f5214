package mdconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

func (s *state) convertParagraph(node *ast.Paragraph) ([]notion.Block, error) {
	if image, ok := soleImage(node); ok {
		return s.convertImage(image)
	}

	spans, err := s.convertInlineChildren(node, format{})
	if err != nil {
		return nil, err
	}
	spans = trimSpans(spans)
	if len(spans) == 0 {
		return nil, nil
	}

	return []notion.Block{notion.NewParagraph(spans)}, nil
}

// convertTextBlock handles the paragraph-like container goldmark emits for
// tight list items.
func (s *state) convertTextBlock(node *ast.TextBlock) ([]notion.Block, error) {
	spans, err := s.convertInlineChildren(node, format{})
	if err != nil {
		return nil, err
	}
	spans = trimSpans(spans)
	if len(spans) == 0 {
		return nil, nil
	}

	return []notion.Block{notion.NewParagraph(spans)}, nil
}

func (s *state) convertHeading(node *ast.Heading) ([]notion.Block, error) {
	spans, err := s.convertInlineChildren(node, format{})
	if err != nil {
		return nil, err
	}

	return []notion.Block{notion.NewHeading(node.Level+s.config.HeadingOffset, trimSpans(spans))}, nil
}

// convertBlockquote hoists the quote's first paragraph into its rich text;
// everything after becomes children so nested structure survives.
func (s *state) convertBlockquote(node *ast.Blockquote) ([]notion.Block, error) {
	children, err := s.convertBlockChildren(node)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, nil
	}

	quote := notion.NewQuote(nil)
	if children[0].Type == notion.BlockParagraph {
		quote = notion.NewQuote(children[0].RichText())
		children = children[1:]
	}
	quote.AppendChildren(children...)

	return []notion.Block{quote}, nil
}

func (s *state) convertFencedCode(node *ast.FencedCodeBlock) ([]notion.Block, error) {
	language := strings.TrimSpace(string(node.Language(s.source)))
	if mapped, ok := s.config.LanguageMap[language]; ok {
		language = mapped
	}

	return []notion.Block{notion.NewCode(codeSpans(node, s.source), language)}, nil
}

func (s *state) convertIndentedCode(node *ast.CodeBlock) ([]notion.Block, error) {
	return []notion.Block{notion.NewCode(codeSpans(node, s.source), "")}, nil
}

// codeSpans reads a code block's lines verbatim, trailing newline trimmed.
// Code blocks keep their content as source segments, not child nodes.
func codeSpans(node ast.Node, source []byte) []notion.RichText {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}

	content := strings.TrimRight(sb.String(), "\n")
	if content == "" {
		return nil
	}
	return []notion.RichText{notion.NewText(content)}
}

// soleImage reports whether the paragraph consists of a single image, the
// only inline position the destination can express as an image block.
func soleImage(node ast.Node) (*ast.Image, bool) {
	if node.ChildCount() != 1 {
		return nil, false
	}
	image, ok := node.FirstChild().(*ast.Image)
	return image, ok
}

func (s *state) convertImage(node *ast.Image) ([]notion.Block, error) {
	destination := strings.TrimSpace(string(node.Destination))
	if httpPattern.MatchString(destination) {
		return []notion.Block{notion.NewExternalImage(destination)}, nil
	}

	s.log.Warn("dropping image without hosted url", zap.String("destination", destination))
	alt := strings.TrimSpace(plainText(node, s.source))
	if alt == "" {
		return nil, nil
	}

	return []notion.Block{
		notion.NewParagraph([]notion.RichText{notion.NewText(alt)}),
	}, nil
}
