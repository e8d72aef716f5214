package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jkrenek/zotero-notion-converter/render"
)

var (
	flagPlain     bool
	flagAllowHTML bool
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Render a note as readable markdown",
	Long: `Preview converts a note to blocks and renders them as markdown on stdout,
showing what the destination page will look like.

With --plain the note's HTML is translated to markdown directly, skipping
the block pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	noteFlags(previewCmd)
	previewCmd.Flags().BoolVar(&flagMarkdownInput, "md", false, "Read the note as markdown instead of HTML")
	previewCmd.Flags().BoolVar(&flagPlain, "plain", false, "Translate the HTML directly, skipping the block pipeline")
	previewCmd.Flags().BoolVar(&flagAllowHTML, "html", false, "Emit tags for formatting markdown lacks (underline)")
}

func runPreview(cmd *cobra.Command, args []string) error {
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

	path := args[0]

	if flagPlain {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read note: %w", err)
		}
		markdown, err := render.FromHTML(string(source))
		if err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(markdown, "\n"))
		return nil
	}

	images, err := newImages(s, log)
	if err != nil {
		return err
	}
	defer closeImages(images, log)

	blocks, err := convertNote(cmd.Context(), path, flagMarkdownInput || isMarkdownPath(path), s, images, log)
	if err != nil {
		return err
	}

	markdown, err := render.Markdown(blocks, render.Config{AllowHTML: flagAllowHTML})
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), markdown)
	return nil
}
