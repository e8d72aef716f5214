package imghost

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultUploadTimeout = 30 * time.Second
	defaultCachePath     = ":memory:"
)

// Config configures the image host client.
type Config struct {
	// DataDir is the reference manager's data directory; attachment files
	// live under DataDir/storage/<KEY>/.
	DataDir string

	// BaseURL is the root of the imgur-style upload API.
	BaseURL string

	// ClientID authorizes uploads via the Client-ID scheme.
	ClientID string

	// CachePath is the SQLite file holding the content-hash upload cache.
	// Defaults to an in-memory database, which deduplicates per process
	// only.
	CachePath string

	// HTTPClient overrides the default client and its 30 second timeout.
	HTTPClient *http.Client

	// Logger receives structured upload diagnostics. Defaults to a nop
	// logger.
	Logger *zap.Logger
}

func (c Config) applyDefaults() Config {
	if c.CachePath == "" {
		c.CachePath = defaultCachePath
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: defaultUploadTimeout}
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data dir is required")
	}
	if c.BaseURL == "" {
		return errors.New("base url is required")
	}
	if c.ClientID == "" {
		return errors.New("client id is required")
	}
	return nil
}
