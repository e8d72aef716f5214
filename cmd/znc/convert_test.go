package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

func writeNote(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertNote(t *testing.T) {
	path := writeNote(t, "note.html", "<p>hello <strong>world</strong></p>")

	blocks, err := convertNote(context.Background(), path, false, defaultSettings(), nil, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, notion.BlockParagraph, blocks[0].Type)
}

func TestConvertNoteMarkdown(t *testing.T) {
	path := writeNote(t, "note.md", "# Title\n\nbody\n")

	blocks, err := convertNote(context.Background(), path, true, defaultSettings(), nil, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, notion.BlockHeading1, blocks[0].Type)
	assert.Equal(t, notion.BlockParagraph, blocks[1].Type)
}

func TestConvertNoteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.html")

	_, err := convertNote(context.Background(), path, false, defaultSettings(), nil, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read note")
}

func TestConvertNoteInvalidConfig(t *testing.T) {
	path := writeNote(t, "note.html", "<p>hi</p>")

	s := defaultSettings()
	s.groupByColor = true

	_, err := convertNote(context.Background(), path, false, s, nil, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grouping by color requires annotation mode")
}

func TestNewImages(t *testing.T) {
	log := zap.NewNop()

	t.Run("not annotation mode", func(t *testing.T) {
		images, err := newImages(settings{dataDir: "/library", imgurClientID: "id"}, log)
		require.NoError(t, err)
		assert.Nil(t, images)
	})

	t.Run("unconfigured", func(t *testing.T) {
		images, err := newImages(settings{annotation: true}, log)
		require.NoError(t, err)
		assert.Nil(t, images)
	})

	t.Run("partial config", func(t *testing.T) {
		_, err := newImages(settings{annotation: true, dataDir: "/library"}, log)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data dir and an imgur client id")
	})

	t.Run("configured", func(t *testing.T) {
		s := settings{
			annotation:    true,
			dataDir:       t.TempDir(),
			imgurClientID: "id",
			imgurBaseURL:  defaultImgurBaseURL,
		}
		images, err := newImages(s, log)
		require.NoError(t, err)
		require.NotNil(t, images)
		require.NoError(t, images.Close())
	})
}

func TestRenderBlocksBatches(t *testing.T) {
	blocks := []notion.Block{
		notion.NewParagraph([]notion.RichText{notion.NewText("one")}),
		notion.NewParagraph([]notion.RichText{notion.NewText("two")}),
		notion.NewParagraph([]notion.RichText{notion.NewText("three")}),
	}

	payload, err := renderBlocks(blocks, 2, false)
	require.NoError(t, err)

	var batches []struct {
		Children []json.RawMessage `json:"children"`
	}
	require.NoError(t, json.Unmarshal(payload, &batches))
	require.Len(t, batches, 2)
	assert.Len(t, batches[0].Children, 2)
	assert.Len(t, batches[1].Children, 1)
}

func TestRenderBlocksFlat(t *testing.T) {
	blocks := []notion.Block{
		notion.NewParagraph([]notion.RichText{notion.NewText("hi")}),
	}

	payload, err := renderBlocks(blocks, 100, true)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"hi"}}]}}]`, string(payload))
}

func TestRenderBlocksFlatEmpty(t *testing.T) {
	payload, err := renderBlocks(nil, 100, true)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(payload))
}

func TestWriteOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		cmd := &cobra.Command{}
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, writeOutput(cmd, "", []byte("[]")))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blocks.json")
		require.NoError(t, writeOutput(&cobra.Command{}, path, []byte("[]")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}

func TestIsMarkdownPath(t *testing.T) {
	assert.True(t, isMarkdownPath("note.md"))
	assert.True(t, isMarkdownPath("NOTE.MD"))
	assert.False(t, isMarkdownPath("note.html"))
	assert.False(t, isMarkdownPath("note"))
}
