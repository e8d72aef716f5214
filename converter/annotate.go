package converter

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// defaultCalloutIcon decorates annotation callouts.
const defaultCalloutIcon = "💡"

// annotation is one extracted highlight or image annotation.
type annotation struct {
	highlight string
	comment   string
	tags      []string
	color     notion.Color
	image     *ImageRef
}

// annotationUnit pairs the blocks produced for one top-level node with the
// grouping metadata of the annotation behind them.
type annotationUnit struct {
	blocks []notion.Block
	triple bool
	color  notion.Color
}

// convertAnnotations converts the top-level children of an annotation note.
// Annotation paragraphs become callout, comment paragraph and divider
// triples; anything else takes the ordinary path. Image uploads fan out
// across goroutines and land back in input order.
func (s *state) convertAnnotations(ctx context.Context, nodes []Node) []notion.Block {
	units := make([]annotationUnit, len(nodes))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.config.MaxConcurrentUploads)

	for i, n := range nodes {
		ann, ok := s.extractAnnotation(n)
		if !ok {
			units[i].blocks = s.convertNodes([]Node{n})
			continue
		}

		units[i].triple = true
		units[i].color = ann.color

		if ann.image == nil {
			units[i].blocks = highlightTriple(ann)
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ann annotation) {
			defer wg.Done()
			defer func() { <-sem }()
			units[i].blocks = s.imageTriple(ctx, ann)
		}(i, ann)
	}
	wg.Wait()

	var blocks []notion.Block
	if s.config.GroupByColor {
		blocks = groupUnitsByColor(units)
	} else {
		for _, u := range units {
			blocks = append(blocks, u.blocks...)
		}
	}

	if len(blocks) == 0 {
		return placeholderTriple()
	}
	return blocks
}

// groupUnitsByColor rearranges annotation triples under one toggle heading
// per color, ordered by first appearance. Blocks that are not annotation
// triples stay ungrouped ahead of the sections.
func groupUnitsByColor(units []annotationUnit) []notion.Block {
	var blocks []notion.Block
	var order []notion.Color
	sections := make(map[notion.Color][]notion.Block)

	for _, u := range units {
		if !u.triple {
			blocks = append(blocks, u.blocks...)
			continue
		}
		if _, seen := sections[u.color]; !seen {
			order = append(order, u.color)
		}
		sections[u.color] = append(sections[u.color], u.blocks...)
	}

	for _, color := range order {
		section := notion.NewToggleHeading(1, []notion.RichText{notion.NewText(sectionTitle(color))})
		section.SetColor(color)
		section.AppendChildren(sections[color]...)
		blocks = append(blocks, section)
	}
	return blocks
}

// extractAnnotation pulls the highlight text, color, comment, tags and
// optional image reference out of one top-level annotation paragraph.
// Nodes without a highlight marker or embedded annotation image report
// false and convert ordinarily.
func (s *state) extractAnnotation(n Node) (annotation, bool) {
	if n.Kind() != KindElement || n.Tag() != "p" {
		return annotation{}, false
	}

	marker := findByClass(n, classHighlight)
	image := findAnnotationImage(n)
	if marker == nil && image == nil {
		return annotation{}, false
	}

	ann := annotation{color: notion.ColorYellowBackground}

	if marker != nil {
		source := marker
		if inner := findByTag(marker, "span"); inner != nil {
			source = inner
		}
		ann.highlight = stripQuoteGlyphs(strings.TrimSpace(source.Text()))
		if token, ok := backgroundColorToken(source.Style("background-color")); ok {
			ann.color = token
		} else if token, ok := backgroundColorToken(marker.Style("background-color")); ok {
			ann.color = token
		}
	}

	if image != nil {
		ref := ImageRef{
			AttachmentKey: image.Attr("data-attachment-key"),
			Annotation:    image.Attr("data-annotation"),
		}
		ann.image = &ref
		if token, ok := descriptorColor(ref.Annotation); ok {
			ann.color = token
		}
	}

	var remainder string
	if citation := findByClass(n, classCitation); citation != nil {
		if next := citation.NextSibling(); next != nil {
			remainder = next.Text()
		}
	}
	ann.comment, ann.tags = splitTags(remainder)

	return ann, true
}

func findAnnotationImage(n Node) Node {
	return findDescendant(n, func(candidate Node) bool {
		return candidate.Tag() == "img" && candidate.Attr("data-attachment-key") != ""
	})
}

// descriptorColor reads the source color out of the URL-encoded JSON
// annotation descriptor. The descriptor is otherwise opaque and forwarded to
// the image source untouched.
func descriptorColor(descriptor string) (notion.Color, bool) {
	if descriptor == "" {
		return "", false
	}
	decoded, err := url.QueryUnescape(descriptor)
	if err != nil {
		return "", false
	}
	var payload struct {
		Color string `json:"color"`
	}
	if err := json.Unmarshal([]byte(decoded), &payload); err != nil {
		return "", false
	}
	return backgroundColorToken(payload.Color)
}

// stripQuoteGlyphs removes the decorating quote glyphs the note template
// wraps highlight text with.
func stripQuoteGlyphs(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	return strings.TrimSpace(string(runes[1 : len(runes)-1]))
}

// splitTags separates the free text after a citation into the comment and
// its hashtag tags.
func splitTags(raw string) (string, []string) {
	parts := strings.Split(raw, "#")
	comment := strings.TrimSpace(parts[0])

	var tags []string
	for _, part := range parts[1:] {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return comment, tags
}

// highlightTriple renders a text highlight as callout, comment paragraph and
// divider.
func highlightTriple(ann annotation) []notion.Block {
	callout := notion.NewCallout(calloutText(ann.highlight), defaultCalloutIcon, ann.color)
	return []notion.Block{callout, annotationParagraph(ann.comment, ann.tags), notion.NewDivider()}
}

// imageTriple uploads the annotation image and renders the triple around it.
// Upload failures substitute the filler triple; the error is logged, never
// returned.
func (s *state) imageTriple(ctx context.Context, ann annotation) []notion.Block {
	if s.config.Images == nil {
		s.log.Warn("no image source configured, using placeholder",
			zap.String("attachment_key", ann.image.AttachmentKey))
		return fillerTriple(ann, "no image source configured")
	}

	hosted, err := s.config.Images.Upload(ctx, *ann.image)
	if err != nil {
		s.log.Warn("image upload failed, using placeholder",
			zap.String("attachment_key", ann.image.AttachmentKey),
			zap.Error(err))
		return fillerTriple(ann, err.Error())
	}

	callout := notion.NewCallout(calloutText(ann.comment), defaultCalloutIcon, ann.color)
	callout.AppendChildren(notion.NewExternalImage(hosted))

	return []notion.Block{callout, annotationParagraph("", ann.tags), notion.NewDivider()}
}

func calloutText(text string) []notion.RichText {
	if text == "" {
		return nil
	}
	return []notion.RichText{notion.NewText(text)}
}

// annotationParagraph renders the comment line: the comment text, a line
// break when tags follow, then the tags as space-separated code spans.
func annotationParagraph(comment string, tags []string) notion.Block {
	var spans []notion.RichText

	if comment != "" {
		text := comment
		if len(tags) > 0 {
			text += "\n"
		}
		spans = append(spans, notion.NewText(text))
	}
	for i, tag := range tags {
		if i > 0 {
			spans = append(spans, notion.NewText(" "))
		}
		span := notion.NewText("#" + tag)
		span.Annotations = &notion.Annotations{Code: true}
		spans = append(spans, span)
	}

	return notion.NewParagraph(spans)
}

// fillerTriple stands in for an image annotation whose upload failed, so the
// output keeps its shape. The failure reason shows in the comment paragraph.
func fillerTriple(ann annotation, reason string) []notion.Block {
	text := ann.comment
	if text == "" {
		text = ann.highlight
	}
	if text == "" {
		text = "Image annotation"
	}
	callout := notion.NewCallout(calloutText(text), defaultCalloutIcon, ann.color)

	notice := notion.NewText("Image could not be uploaded: " + reason)
	notice.Annotations = &notion.Annotations{Italic: true}

	return []notion.Block{callout, notion.NewParagraph([]notion.RichText{notice}), notion.NewDivider()}
}

// placeholderTriple marks a note that produced no content at all.
func placeholderTriple() []notion.Block {
	callout := notion.NewCallout(calloutText("No annotations found."), defaultCalloutIcon, notion.ColorGrayBackground)
	return []notion.Block{callout, notion.NewParagraph(nil), notion.NewDivider()}
}
