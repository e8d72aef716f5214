package converter

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const defaultMaxConcurrentUploads = 4

// ImageRef identifies an annotation image. AttachmentKey names the
// attachment in the source library; Annotation is the raw descriptor from
// the note markup, forwarded unparsed.
type ImageRef struct {
	AttachmentKey string
	Annotation    string
}

// ImageSource resolves annotation images to externally hosted URLs.
type ImageSource interface {
	Upload(ctx context.Context, ref ImageRef) (string, error)
}

// Config configures HTML to block conversion.
type Config struct {
	// IsAnnotation selects the annotation-note path, where highlight
	// paragraphs become callout, comment paragraph and divider triples.
	IsAnnotation bool

	// GroupByColor collects annotation triples under one heading section per
	// highlight color, ordered by first appearance. Requires IsAnnotation.
	GroupByColor bool

	// Images uploads annotation images. Without one, image annotations
	// degrade to placeholder blocks.
	Images ImageSource

	// MaxConcurrentUploads bounds the image upload fan-out. Defaults to 4.
	MaxConcurrentUploads int

	// Logger receives structured conversion diagnostics. Defaults to a nop
	// logger.
	Logger *zap.Logger
}

func (c Config) applyDefaults() Config {
	if c.MaxConcurrentUploads == 0 {
		c.MaxConcurrentUploads = defaultMaxConcurrentUploads
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.MaxConcurrentUploads < 1 {
		return fmt.Errorf("max concurrent uploads must be positive, got %d", c.MaxConcurrentUploads)
	}
	if c.GroupByColor && !c.IsAnnotation {
		return errors.New("grouping by color requires annotation mode")
	}
	return nil
}
