package converter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// imageSourceFunc adapts a function to the ImageSource interface.
type imageSourceFunc func(ctx context.Context, ref ImageRef) (string, error)

func (f imageSourceFunc) Upload(ctx context.Context, ref ImageRef) (string, error) {
	return f(ctx, ref)
}

const highlightNote = `<div data-schema-version="8">` +
	`<p><span class="highlight"><span style="background-color: #ffd400">"Key idea"</span></span> ` +
	`<span class="citation">(<a href="zotero://select/library/items/ABC123">Doe, 2024</a>)</span>` +
	` interesting #theory #review</p>` +
	`</div>`

const imageNote = `<div data-schema-version="8">` +
	`<p><img data-attachment-key="KEY1" data-annotation="%7B%22color%22%3A%22%235fb236%22%7D" src="file:///tmp/img.png"> ` +
	`<span class="citation">(<a href="zotero://select/library/items/ABC123">Doe, 2024</a>)</span>` +
	` figure two</p>` +
	`</div>`

func TestConvertAnnotationHighlight(t *testing.T) {
	blocks := mustConvert(t, Config{IsAnnotation: true}, highlightNote)

	require.Len(t, blocks, 3)

	callout := blocks[0]
	require.Equal(t, notion.BlockCallout, callout.Type)
	assert.Equal(t, "Key idea", richTextString(callout.RichText()))
	assert.Equal(t, notion.ColorYellowBackground, callout.Callout.Color)

	comment := blocks[1]
	require.Equal(t, notion.BlockParagraph, comment.Type)
	spans := comment.RichText()
	require.Len(t, spans, 4)
	assert.Equal(t, "interesting\n", spans[0].Text.Content)
	assert.Nil(t, spans[0].Annotations)
	assert.Equal(t, "#theory", spans[1].Text.Content)
	require.NotNil(t, spans[1].Annotations)
	assert.True(t, spans[1].Annotations.Code)
	assert.Equal(t, " ", spans[2].Text.Content)
	assert.Equal(t, "#review", spans[3].Text.Content)
	require.NotNil(t, spans[3].Annotations)
	assert.True(t, spans[3].Annotations.Code)

	assert.Equal(t, notion.BlockDivider, blocks[2].Type)
}

func TestConvertAnnotationColorMapping(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected notion.Color
	}{
		{"hex", "background-color: #2ea8e5", notion.ColorBlueBackground},
		{"hex upper case", "background-color: #A28AE5", notion.ColorPurpleBackground},
		{"rgb form", "background-color: rgb(241, 152, 55)", notion.ColorOrangeBackground},
		{"hex with alpha", "background-color: #e56eeeff", notion.ColorPinkBackground},
		{"unknown defaults to yellow", "background-color: #123456", notion.ColorYellowBackground},
		{"missing defaults to yellow", "", notion.ColorYellowBackground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := fmt.Sprintf(
				`<p><span class="highlight"><span style="%s">"text"</span></span></p>`, tt.style)
			blocks := mustConvert(t, Config{IsAnnotation: true}, source)

			require.Len(t, blocks, 3)
			assert.Equal(t, tt.expected, blocks[0].Callout.Color)
		})
	}
}

func TestConvertAnnotationMarkerWithoutInnerSpan(t *testing.T) {
	source := `<p><span class="highlight" style="background-color: #f19837">"plain marker"</span></p>`
	blocks := mustConvert(t, Config{IsAnnotation: true}, source)

	require.Len(t, blocks, 3)
	assert.Equal(t, "plain marker", richTextString(blocks[0].RichText()))
	assert.Equal(t, notion.ColorOrangeBackground, blocks[0].Callout.Color)
}

func TestConvertAnnotationWithoutTags(t *testing.T) {
	source := `<p><span class="highlight"><span>"quote"</span></span> ` +
		`<span class="citation">(Doe)</span> just a comment</p>`
	blocks := mustConvert(t, Config{IsAnnotation: true}, source)

	require.Len(t, blocks, 3)
	spans := blocks[1].RichText()
	require.Len(t, spans, 1)
	assert.Equal(t, "just a comment", spans[0].Text.Content)
}

func TestConvertAnnotationPassThrough(t *testing.T) {
	source := `<div data-schema-version="8"><h1>Summary</h1><p>no marker here</p></div>`
	blocks := mustConvert(t, Config{IsAnnotation: true}, source)

	require.Len(t, blocks, 2)
	assert.Equal(t, notion.BlockHeading1, blocks[0].Type)
	assert.Equal(t, notion.BlockParagraph, blocks[1].Type)
	assert.Equal(t, "no marker here", richTextString(blocks[1].RichText()))
}

func TestConvertAnnotationEmptyNotePlaceholder(t *testing.T) {
	blocks := mustConvert(t, Config{IsAnnotation: true}, `<div data-schema-version="8"></div>`)

	require.Len(t, blocks, 3)
	assert.Equal(t, notion.BlockCallout, blocks[0].Type)
	assert.Equal(t, "No annotations found.", richTextString(blocks[0].RichText()))
	assert.Equal(t, notion.BlockParagraph, blocks[1].Type)
	assert.Equal(t, notion.BlockDivider, blocks[2].Type)
}

func TestConvertAnnotationImage(t *testing.T) {
	var got ImageRef
	source := imageSourceFunc(func(_ context.Context, ref ImageRef) (string, error) {
		got = ref
		return "https://img.example/hosted.png", nil
	})

	blocks := mustConvert(t, Config{IsAnnotation: true, Images: source}, imageNote)

	require.Len(t, blocks, 3)
	assert.Equal(t, "KEY1", got.AttachmentKey)
	assert.NotEmpty(t, got.Annotation)

	callout := blocks[0]
	require.Equal(t, notion.BlockCallout, callout.Type)
	assert.Equal(t, notion.ColorGreenBackground, callout.Callout.Color)
	assert.Equal(t, "figure two", richTextString(callout.RichText()))

	children := callout.Children()
	require.Len(t, children, 1)
	require.Equal(t, notion.BlockImage, children[0].Type)
	assert.Equal(t, "https://img.example/hosted.png", children[0].Image.External.URL)

	assert.Equal(t, notion.BlockDivider, blocks[2].Type)
}

func TestConvertAnnotationImageUploadFailure(t *testing.T) {
	source := imageSourceFunc(func(context.Context, ImageRef) (string, error) {
		return "", errors.New("host unreachable")
	})

	blocks := mustConvert(t, Config{IsAnnotation: true, Images: source}, imageNote)

	require.Len(t, blocks, 3)
	assert.Equal(t, notion.BlockCallout, blocks[0].Type)
	assert.Empty(t, blocks[0].Children())
	assert.Contains(t, richTextString(blocks[1].RichText()), "host unreachable")
	assert.Equal(t, notion.BlockDivider, blocks[2].Type)
}

func TestConvertAnnotationImageWithoutSource(t *testing.T) {
	blocks := mustConvert(t, Config{IsAnnotation: true}, imageNote)

	require.Len(t, blocks, 3)
	assert.Contains(t, richTextString(blocks[1].RichText()), "no image source")
}

func TestConvertAnnotationUploadOrderPreserved(t *testing.T) {
	const n = 6

	var html strings.Builder
	html.WriteString(`<div data-schema-version="8">`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&html, `<p><img data-attachment-key="KEY%d" data-annotation=""></p>`, i)
	}
	html.WriteString(`</div>`)

	// Every upload blocks until all are in flight, so completion order is
	// decoupled from document order.
	var barrier sync.WaitGroup
	barrier.Add(n)
	source := imageSourceFunc(func(_ context.Context, ref ImageRef) (string, error) {
		barrier.Done()
		barrier.Wait()
		return "https://img.example/" + ref.AttachmentKey + ".png", nil
	})

	cfg := Config{IsAnnotation: true, Images: source, MaxConcurrentUploads: n}
	blocks := mustConvert(t, cfg, html.String())

	require.Len(t, blocks, 3*n)
	for i := 0; i < n; i++ {
		callout := blocks[3*i]
		require.Equal(t, notion.BlockCallout, callout.Type)
		children := callout.Children()
		require.Len(t, children, 1)
		assert.Equal(t, fmt.Sprintf("https://img.example/KEY%d.png", i), children[0].Image.External.URL)
	}
}

func TestConvertAnnotationGroupByColor(t *testing.T) {
	source := `<div data-schema-version="8">` +
		`<p><span class="highlight"><span style="background-color: #ffd400">"first yellow"</span></span></p>` +
		`<p><span class="highlight"><span style="background-color: #5fb236">"green one"</span></span></p>` +
		`<p><span class="highlight"><span style="background-color: #ffd400">"second yellow"</span></span></p>` +
		`</div>`

	blocks := mustConvert(t, Config{IsAnnotation: true, GroupByColor: true}, source)

	require.Len(t, blocks, 2)

	yellow := blocks[0]
	require.Equal(t, notion.BlockHeading1, yellow.Type)
	assert.Equal(t, "General highlights", richTextString(yellow.RichText()))
	assert.True(t, yellow.Heading1.IsToggleable)

	yellowChildren := yellow.Children()
	require.Len(t, yellowChildren, 6)
	assert.Equal(t, "first yellow", richTextString(yellowChildren[0].RichText()))
	assert.Equal(t, "second yellow", richTextString(yellowChildren[3].RichText()))

	green := blocks[1]
	require.Equal(t, notion.BlockHeading1, green.Type)
	assert.Equal(t, "Important", richTextString(green.RichText()))
	assert.Len(t, green.Children(), 3)
}

func TestConvertAnnotationGroupingKeepsGenericContentFirst(t *testing.T) {
	source := `<div data-schema-version="8">` +
		`<h1>Reading notes</h1>` +
		`<p><span class="highlight"><span style="background-color: #2ea8e5">"blue"</span></span></p>` +
		`</div>`

	blocks := mustConvert(t, Config{IsAnnotation: true, GroupByColor: true}, source)

	require.Len(t, blocks, 2)
	assert.Equal(t, "Reading notes", richTextString(blocks[0].RichText()))
	assert.False(t, blocks[0].Heading1.IsToggleable)

	section := blocks[1]
	assert.Equal(t, "Questions", richTextString(section.RichText()))
	assert.Equal(t, notion.ColorBlueBackground, section.BlockColor())
	assert.Len(t, section.Children(), 3)
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		comment string
		tags    []string
	}{
		{"empty", "", "", nil},
		{"comment only", "  a note  ", "a note", nil},
		{"tags only", "#one #two", "", []string{"one", "two"}},
		{"comment and tags", " see later #todo #urgent", "see later", []string{"todo", "urgent"}},
		{"blank fragments dropped", "x # #y", "x", []string{"y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment, tags := splitTags(tt.raw)
			assert.Equal(t, tt.comment, comment)
			assert.Equal(t, tt.tags, tags)
		})
	}
}

func TestStripQuoteGlyphs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"ascii quotes", `"quoted"`, "quoted"},
		{"curly quotes", "“quoted”", "quoted"},
		{"inner whitespace trimmed", `" padded "`, "padded"},
		{"too short unchanged", "x", "x"},
		{"empty unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripQuoteGlyphs(tt.text))
		})
	}
}

func TestDescriptorColor(t *testing.T) {
	t.Run("url-encoded descriptor", func(t *testing.T) {
		token, ok := descriptorColor("%7B%22color%22%3A%22%23ff6666%22%7D")
		require.True(t, ok)
		assert.Equal(t, notion.ColorRedBackground, token)
	})

	t.Run("empty descriptor", func(t *testing.T) {
		_, ok := descriptorColor("")
		assert.False(t, ok)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, ok := descriptorColor("%7Bnot-json")
		assert.False(t, ok)
	})

	t.Run("unknown color", func(t *testing.T) {
		_, ok := descriptorColor("%7B%22color%22%3A%22%23000000%22%7D")
		assert.False(t, ok)
	})
}
