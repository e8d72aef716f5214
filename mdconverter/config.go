package mdconverter

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Config configures markdown conversion behavior.
type Config struct {
	// HeadingOffset shifts every heading level before it clamps to the
	// destination's 1..3 range.
	HeadingOffset int

	// LanguageMap rewrites fenced code info strings to destination language
	// names, e.g. "golang" -> "go".
	LanguageMap map[string]string

	// Logger receives conversion diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

func (c Config) applyDefaults() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

func (c Config) clone() Config {
	cloned := c
	cloned.LanguageMap = cloneStringMap(c.LanguageMap)
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.HeadingOffset < -2 || c.HeadingOffset > 2 {
		return fmt.Errorf("headingOffset must be between -2 and 2, got %d", c.HeadingOffset)
	}

	for from, to := range c.LanguageMap {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}

	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
