// Package mdconverter turns reference-manager markdown notes into ordered
// destination blocks.
//
// Markdown is the secondary note export format next to HTML. The conversion
// parses GFM with goldmark and walks the syntax tree top down: block nodes
// map to their destination counterparts, inline nodes flatten into rich text
// spans with inherited formatting, and nested lists attach as children of
// their item. Constructs the destination cannot express degrade instead of
// failing: deep headings collapse to the deepest supported level, images
// mixed into text fall back to linked alt text, raw HTML drops.
package mdconverter

import (
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// Converter converts markdown notes to blocks. A Converter is safe for
// concurrent use; each conversion runs on its own state.
type Converter struct {
	config Config
	parser goldmark.Markdown
}

// state carries one conversion's dependencies through the walk.
type state struct {
	ctx    context.Context
	config Config
	source []byte
	log    *zap.Logger
}

// New creates a Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// Convert parses a markdown note and returns its block sequence. The context
// is checked between blocks, so cancellation aborts large documents early.
func (c *Converter) Convert(ctx context.Context, source []byte) ([]notion.Block, error) {
	s := &state{
		ctx:    ctx,
		config: c.config,
		source: source,
		log:    c.config.Logger,
	}

	root := c.parser.Parser().Parse(text.NewReader(source))
	return s.convertBlockChildren(root)
}

func (s *state) checkContext() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}
