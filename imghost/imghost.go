// Package imghost uploads annotation images to an imgur-style hosting API
// and hands back externally reachable URLs.
//
// Attachments are resolved from the reference manager's storage layout on
// disk, sniffed so only images leave the machine, and deduplicated through a
// SQLite content-hash cache so repeated conversions reuse earlier uploads.
package imghost

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/jkrenek/zotero-notion-converter/converter"
)

const uploadPath = "/3/image"

// ErrNotFound reports an attachment key with no file behind it.
var ErrNotFound = errors.New("attachment not found")

// Attachment keys are eight alphanumerics; anything else cannot name a
// storage directory.
var attachmentKeyPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// Client uploads annotation images and caches the hosted URLs. It implements
// converter.ImageSource and is safe for concurrent use.
type Client struct {
	config     Config
	httpClient *http.Client
	cache      *urlCache
	log        *zap.Logger
}

var _ converter.ImageSource = (*Client)(nil)

// New creates a Client with the given config.
func New(config Config) (*Client, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cache, err := openCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("open upload cache: %w", err)
	}

	return &Client{
		config:     cfg,
		httpClient: cfg.HTTPClient,
		cache:      cache,
		log:        cfg.Logger,
	}, nil
}

// Upload resolves the attachment behind ref, uploads it and returns the
// hosted URL. Identical image bytes are served from the content-hash cache
// instead of uploading again.
func (c *Client) Upload(ctx context.Context, ref converter.ImageRef) (string, error) {
	name, data, err := c.resolve(ref.AttachmentKey)
	if err != nil {
		return "", err
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("sniff attachment type: %w", err)
	}
	if kind.MIME.Type != "image" {
		return "", fmt.Errorf("attachment %s is not an image", ref.AttachmentKey)
	}

	hash := fmt.Sprintf("%x", sha256.Sum256(data))
	if url, ok, err := c.cache.lookup(ctx, hash); err != nil {
		c.log.Warn("upload cache lookup failed", zap.Error(err))
	} else if ok {
		c.log.Debug("upload cache hit",
			zap.String("attachment_key", ref.AttachmentKey),
			zap.String("url", url))
		return url, nil
	}

	requestID := uuid.NewString()
	c.log.Debug("uploading annotation image",
		zap.String("attachment_key", ref.AttachmentKey),
		zap.String("request_id", requestID),
		zap.String("mime", kind.MIME.Value),
		zap.Int("size", len(data)))

	url, err := c.post(ctx, requestID, name, kind.MIME.Value, data)
	if err != nil {
		return "", err
	}

	if err := c.cache.store(ctx, hash, url); err != nil {
		c.log.Warn("upload cache store failed", zap.Error(err))
	}

	c.log.Info("image uploaded",
		zap.String("attachment_key", ref.AttachmentKey),
		zap.String("request_id", requestID),
		zap.String("url", url))
	return url, nil
}

// Close releases the upload cache and any idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return c.cache.Close()
}

// resolve locates the attachment's bytes on disk. The reference manager
// keeps each attachment in its own directory named by key, next to hidden
// index files that are never the attachment itself.
func (c *Client) resolve(key string) (string, []byte, error) {
	if !attachmentKeyPattern.MatchString(key) {
		return "", nil, ErrNotFound
	}

	dir := filepath.Join(c.config.DataDir, "storage", key)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("read attachment dir: %w", err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return "", nil, fmt.Errorf("read attachment: %w", err)
		}
		return entry.Name(), data, nil
	}

	return "", nil, ErrNotFound
}

// post sends one multipart upload request. The request id doubles as the
// multipart boundary so a capture of the wire traffic ties back to the logs.
func (c *Client) post(ctx context.Context, requestID, filename, mime string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.SetBoundary("znc-" + requestID); err != nil {
		return "", fmt.Errorf("set multipart boundary: %w", err)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", mime)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+uploadPath, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Client-ID "+c.config.ClientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("upload image: status %d: %s", resp.StatusCode, string(respBody))
	}

	var payload struct {
		Data struct {
			Link string `json:"link"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if !payload.Success || payload.Data.Link == "" {
		return "", errors.New("upload response carries no image link")
	}

	return payload.Data.Link, nil
}
