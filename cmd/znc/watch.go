package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/imghost"
	"github.com/jkrenek/zotero-notion-converter/notion"
	"github.com/jkrenek/zotero-notion-converter/render"
)

// Editors write in bursts; a note converts once it has been quiet this long.
const watchDebounce = 300 * time.Millisecond

var flagWatchOutDir string

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Convert notes in a directory as they change",
	Long: `Watch converts every note file in DIR and then keeps watching it, writing
JSON block batches next to each note (or into --out-dir) whenever a .html
or .md file changes. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	noteFlags(watchCmd)
	watchCmd.Flags().IntVar(&flagBatchSize, "batch-size", notion.MaxBlocksPerAppend, "Blocks per append batch")
	watchCmd.Flags().StringVar(&flagWatchOutDir, "out-dir", "", "Directory for converted output (default: next to each note)")
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch dir %s is not a directory", dir)
	}

	if flagWatchOutDir != "" {
		if err := os.MkdirAll(flagWatchOutDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	images, err := newImages(s, log)
	if err != nil {
		return multierr.Append(err, watcher.Close())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loopErr := watchDir(ctx, watcher, dir, s, images, log)

	var closeErr error
	if images != nil {
		closeErr = images.Close()
	}
	return multierr.Combine(loopErr, watcher.Close(), closeErr)
}

func watchDir(ctx context.Context, watcher *fsnotify.Watcher, dir string, s settings, images *imghost.Client, log *zap.Logger) error {
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info("watching for note changes", zap.String("dir", dir))

	// Convert what is already there, then follow changes.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read watch dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isNotePath(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := convertToFile(ctx, path, s, images, log); err != nil {
			log.Warn("conversion failed", zap.String("note", path), zap.Error(err))
		}
	}

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		for _, timer := range timers {
			timer.Stop()
		}
	}()

	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if timer, ok := timers[path]; ok {
			timer.Stop()
		}
		timers[path] = time.AfterFunc(watchDebounce, func() {
			mu.Lock()
			delete(timers, path)
			mu.Unlock()
			if err := convertToFile(ctx, path, s, images, log); err != nil {
				log.Warn("conversion failed", zap.String("note", path), zap.Error(err))
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !isNotePath(event.Name) {
				continue
			}
			schedule(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

// convertToFile converts one note and writes the batched JSON next to it.
func convertToFile(ctx context.Context, path string, s settings, images *imghost.Client, log *zap.Logger) error {
	blocks, err := convertNote(ctx, path, isMarkdownPath(path), s, images, log)
	if err != nil {
		return err
	}

	payload, err := render.JSON(notion.Partition(blocks, s.batchSize))
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	outPath := outputPath(path, flagWatchOutDir)
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("note converted",
		zap.String("note", path),
		zap.String("output", outPath),
		zap.Int("blocks", len(blocks)))
	return nil
}

func outputPath(notePath, outDir string) string {
	name := strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath)) + ".json"
	if outDir == "" {
		return filepath.Join(filepath.Dir(notePath), name)
	}
	return filepath.Join(outDir, name)
}

func isNotePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".md":
		return true
	}
	return false
}
