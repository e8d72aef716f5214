// Package render turns block sequences back into human-readable surfaces:
// GFM markdown for previews and golden files, indented destination-API JSON
// for payload inspection, and a direct HTML to markdown passthrough.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// Config controls markdown rendering.
type Config struct {
	// AllowHTML emits tags for formatting GFM lacks (underline). Without it
	// underline drops silently. Colors always drop.
	AllowHTML bool
}

// Markdown renders blocks as GFM. Children nest under their parent: list
// items indent, quote and callout children join their "> " body, toggle
// heading children follow their heading.
func Markdown(blocks []notion.Block, config Config) (string, error) {
	r := renderer{config: config}
	content, err := r.renderBlocks(blocks)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(content, "\n") + "\n", nil
}

type renderer struct {
	config Config
}

func (r renderer) renderBlocks(blocks []notion.Block) (string, error) {
	var sb strings.Builder
	ordinal := 0

	for i, block := range blocks {
		if block.Type == notion.BlockNumberedListItem {
			ordinal++
		} else {
			ordinal = 0
		}

		rendered, err := r.renderBlock(block, ordinal)
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)

		// A list run ends with a blank line so following text cannot lazily
		// continue the last item.
		if block.Type.IsListItem() && (i == len(blocks)-1 || !blocks[i+1].Type.IsListItem()) {
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

func (r renderer) renderBlock(block notion.Block, ordinal int) (string, error) {
	switch block.Type {
	case notion.BlockParagraph:
		content := r.renderRichText(block.RichText())
		if content == "" {
			return "", nil
		}
		return content + "\n\n", nil

	case notion.BlockHeading1, notion.BlockHeading2, notion.BlockHeading3:
		return r.renderHeading(block)

	case notion.BlockBulletedListItem:
		return r.renderListItem(block, "- ")

	case notion.BlockNumberedListItem:
		return r.renderListItem(block, fmt.Sprintf("%d. ", ordinal))

	case notion.BlockQuote:
		return r.renderQuote(block)

	case notion.BlockCallout:
		return r.renderCallout(block)

	case notion.BlockCode:
		return r.renderCode(block)

	case notion.BlockDivider:
		return "---\n\n", nil

	case notion.BlockEquation:
		return "$$\n" + block.Equation.Expression + "\n$$\n\n", nil

	case notion.BlockImage:
		if block.Image.External == nil {
			return "", nil
		}
		return "![](" + block.Image.External.URL + ")\n\n", nil

	default:
		return "", fmt.Errorf("cannot render block type %q", block.Type)
	}
}

func (r renderer) renderHeading(block notion.Block) (string, error) {
	level := 1
	switch block.Type {
	case notion.BlockHeading2:
		level = 2
	case notion.BlockHeading3:
		level = 3
	}

	content := r.renderRichText(block.RichText())
	if content == "" {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", level))
	sb.WriteString(" ")
	sb.WriteString(content)
	sb.WriteString("\n\n")

	if children := block.Children(); len(children) > 0 {
		rendered, err := r.renderBlocks(children)
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
	}

	return sb.String(), nil
}

func (r renderer) renderListItem(block notion.Block, marker string) (string, error) {
	content := r.renderRichText(block.RichText())

	if children := block.Children(); len(children) > 0 {
		rendered, err := r.renderBlocks(children)
		if err != nil {
			return "", err
		}
		separator := "\n\n"
		if children[0].Type.IsListItem() {
			separator = "\n"
		}
		content += separator + strings.TrimRight(rendered, "\n")
	}

	return indent(content, marker) + "\n", nil
}

func (r renderer) renderQuote(block notion.Block) (string, error) {
	content := r.renderRichText(block.RichText())

	if children := block.Children(); len(children) > 0 {
		rendered, err := r.renderBlocks(children)
		if err != nil {
			return "", err
		}
		if content != "" {
			content += "\n\n"
		}
		content += strings.TrimRight(rendered, "\n")
	}
	if content == "" {
		return "", nil
	}

	return quotePrefix(content) + "\n\n", nil
}

// renderCallout renders a callout as a blockquote whose first line is bold,
// keeping the icon emoji in front of the title.
func (r renderer) renderCallout(block notion.Block) (string, error) {
	title := r.renderRichText(block.RichText())
	if title != "" {
		title = "**" + title + "**"
	}
	if icon := block.Callout.Icon; icon != nil && icon.Emoji != "" {
		title = strings.TrimSpace(icon.Emoji + " " + title)
	}

	content := title
	if children := block.Children(); len(children) > 0 {
		rendered, err := r.renderBlocks(children)
		if err != nil {
			return "", err
		}
		if content != "" {
			content += "\n\n"
		}
		content += strings.TrimRight(rendered, "\n")
	}
	if content == "" {
		return "", nil
	}

	return quotePrefix(content) + "\n\n", nil
}

func (r renderer) renderCode(block notion.Block) (string, error) {
	content := richTextPlain(block.RichText())
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	language := block.Code.Language
	if language == notion.PlainTextLanguage {
		language = ""
	}

	var sb strings.Builder
	sb.WriteString("```")
	sb.WriteString(language)
	sb.WriteString("\n")
	sb.WriteString(strings.TrimRight(content, "\n"))
	sb.WriteString("\n```\n\n")

	return sb.String(), nil
}

func (r renderer) renderRichText(spans []notion.RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(r.renderSpan(span))
	}
	return sb.String()
}

// renderSpan wraps one span in its GFM delimiters. Edge whitespace moves
// outside the delimiters so emphasis markers stay flanking-valid.
func (r renderer) renderSpan(span notion.RichText) string {
	if span.Type == notion.RichTextEquation {
		return "$" + span.Equation.Expression + "$"
	}

	content := span.Text.Content
	if content == "\n" {
		return "\\\n"
	}

	core := strings.TrimLeftFunc(content, unicode.IsSpace)
	prefix := content[:len(content)-len(core)]
	core = strings.TrimRightFunc(core, unicode.IsSpace)
	suffix := content[len(prefix)+len(core):]
	if core == "" {
		return content
	}

	annotations := span.AnnotationsOrZero()
	if annotations.Code {
		core = "`" + core + "`"
	}
	if annotations.Strikethrough {
		core = "~~" + core + "~~"
	}
	if annotations.Italic {
		core = "*" + core + "*"
	}
	if annotations.Bold {
		core = "**" + core + "**"
	}
	if annotations.Underline && r.config.AllowHTML {
		core = "<u>" + core + "</u>"
	}
	if url := span.LinkURL(); url != "" {
		core = "[" + core + "](" + url + ")"
	}

	return prefix + core + suffix
}

func richTextPlain(spans []notion.RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.PlainText())
	}
	return sb.String()
}

// quotePrefix prefixes every line with ">". Lines already quoted gain
// another level.
func quotePrefix(content string) string {
	lines := strings.Split(content, "\n")
	quoted := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case line == "":
			quoted = append(quoted, ">")
		case strings.HasPrefix(line, ">"):
			quoted = append(quoted, ">"+line)
		default:
			quoted = append(quoted, "> "+line)
		}
	}
	return strings.Join(quoted, "\n")
}

// indent applies a list marker to content. The first line takes the marker,
// continuation lines indent by the marker's width, blank lines stay blank.
func indent(content, marker string) string {
	content = strings.TrimRight(content, "\n")
	lines := strings.Split(content, "\n")
	pad := strings.Repeat(" ", len(marker))

	var sb strings.Builder
	for i, line := range lines {
		if i == 0 {
			sb.WriteString(marker + line)
			continue
		}
		sb.WriteString("\n")
		if line != "" {
			sb.WriteString(pad + line)
		}
	}

	return sb.String()
}
