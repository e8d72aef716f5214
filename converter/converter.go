// Package converter turns reference-manager note HTML into ordered
// destination blocks.
//
// The conversion walks the parsed DOM top down. Every node is first
// classified into a ParsedNode variant, then assembled: block elements
// become blocks with their inline content flattened into rich text spans,
// list containers flatten into sibling item blocks, and stray inline runs
// wrap into synthesized paragraphs. Annotation notes take a dedicated path
// that renders each highlight as a callout, comment paragraph and divider
// triple.
//
// Conversion degrades rather than fails: unknown elements contribute their
// text, unknown colors drop, and failed image uploads leave placeholder
// blocks. The only returned error is a *ParseError for input the HTML
// parser rejects.
package converter

import (
	"context"

	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// Converter converts note HTML fragments to blocks. A Converter is safe for
// concurrent use; each conversion runs on its own state.
type Converter struct {
	config Config
}

// state carries one conversion's dependencies through the walk.
type state struct {
	config Config
	log    *zap.Logger
}

// New creates a Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Converter{config: cfg}, nil
}

// Convert parses a note HTML fragment and returns its block sequence. The
// context bounds annotation image uploads; the rest of the conversion is
// synchronous.
func (c *Converter) Convert(ctx context.Context, source string) ([]notion.Block, error) {
	container, err := parseContainer(source)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	s := &state{config: c.config, log: c.config.Logger}
	nodes := container.Children()

	if c.config.IsAnnotation {
		return s.convertAnnotations(ctx, nodes), nil
	}
	return s.convertNodes(nodes), nil
}
