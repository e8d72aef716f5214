package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/converter"
	"github.com/jkrenek/zotero-notion-converter/imghost"
	"github.com/jkrenek/zotero-notion-converter/mdconverter"
	"github.com/jkrenek/zotero-notion-converter/notion"
	"github.com/jkrenek/zotero-notion-converter/render"
)

var (
	flagAnnotation    bool
	flagGroupByColor  bool
	flagBatchSize     int
	flagMarkdownInput bool
	flagFlat          bool
	flagOut           string
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert a note file to API-ready JSON block batches",
	Long: `Convert reads a note exported from Zotero, converts it to typed blocks and
prints append-request batches as JSON.

Examples:
  znc convert note.html
  znc convert --annotation --group-by-color annotations.html
  znc convert --md note.md --out blocks.json`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	noteFlags(convertCmd)
	convertCmd.Flags().IntVar(&flagBatchSize, "batch-size", notion.MaxBlocksPerAppend, "Blocks per append batch")
	convertCmd.Flags().BoolVar(&flagMarkdownInput, "md", false, "Read the note as markdown instead of HTML")
	convertCmd.Flags().BoolVar(&flagFlat, "flat", false, "Emit one flat block array instead of append batches")
	convertCmd.Flags().StringVar(&flagOut, "out", "", "Write output to a file instead of stdout")
}

// noteFlags registers the conversion flags shared by convert, preview and
// watch.
func noteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagAnnotation, "annotation", false, "Treat the note as an annotation export")
	cmd.Flags().BoolVar(&flagGroupByColor, "group-by-color", false, "Group annotation highlights by color")
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s.applyNoteFlags(cmd)

	log, err := newLogger(s.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	images, err := newImages(s, log)
	if err != nil {
		return err
	}
	defer closeImages(images, log)

	path := args[0]
	blocks, err := convertNote(cmd.Context(), path, flagMarkdownInput || isMarkdownPath(path), s, images, log)
	if err != nil {
		return err
	}

	payload, err := renderBlocks(blocks, s.batchSize, flagFlat)
	if err != nil {
		return err
	}

	return writeOutput(cmd, flagOut, payload)
}

// convertNote runs one note file through the conversion pipeline. Markdown
// notes take the goldmark path; everything else parses as HTML.
func convertNote(ctx context.Context, path string, markdown bool, s settings, images *imghost.Client, log *zap.Logger) ([]notion.Block, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read note: %w", err)
	}

	if markdown {
		conv, err := mdconverter.New(mdconverter.Config{
			HeadingOffset: s.headingOffset,
			LanguageMap:   s.languageMap,
			Logger:        log,
		})
		if err != nil {
			return nil, err
		}
		return conv.Convert(ctx, source)
	}

	config := converter.Config{
		IsAnnotation: s.annotation,
		GroupByColor: s.groupByColor,
		Logger:       log,
	}
	if images != nil {
		config.Images = images
	}

	conv, err := converter.New(config)
	if err != nil {
		return nil, err
	}
	return conv.Convert(ctx, string(source))
}

// newImages builds the upload client when annotation mode has image hosting
// configured. Without one, image annotations degrade to placeholder blocks.
func newImages(s settings, log *zap.Logger) (*imghost.Client, error) {
	if !s.annotation || (s.dataDir == "" && s.imgurClientID == "") {
		return nil, nil
	}
	if s.dataDir == "" || s.imgurClientID == "" {
		return nil, errors.New("image uploads need both a data dir and an imgur client id")
	}

	return imghost.New(imghost.Config{
		DataDir:   s.dataDir,
		BaseURL:   s.imgurBaseURL,
		ClientID:  s.imgurClientID,
		CachePath: s.cachePath,
		Logger:    log,
	})
}

func closeImages(images *imghost.Client, log *zap.Logger) {
	if images == nil {
		return
	}
	if err := images.Close(); err != nil {
		log.Warn("closing image host", zap.Error(err))
	}
}

// renderBlocks marshals converted blocks, either as append-request batches
// or as one flat array.
func renderBlocks(blocks []notion.Block, batchSize int, flat bool) ([]byte, error) {
	if flat {
		if blocks == nil {
			blocks = []notion.Block{}
		}
		payload, err := json.MarshalIndent(blocks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render output: %w", err)
		}
		return payload, nil
	}

	payload, err := render.JSON(notion.Partition(blocks, batchSize))
	if err != nil {
		return nil, fmt.Errorf("render output: %w", err)
	}
	return payload, nil
}

func writeOutput(cmd *cobra.Command, path string, payload []byte) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func isMarkdownPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
