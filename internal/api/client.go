// Package api implements the HTTP transport for the TextWave REST API:
// URL building, authentication, optional gzip compression of large
// bodies, and transport-level error mapping.
package api

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/textwave/textwave-go/internal/domain"
	"github.com/textwave/textwave-go/internal/version"
)

// DefaultBaseURL is the public TextWave API endpoint.
const DefaultBaseURL = "https://api.textwave.ai"

// tokenHeader carries the opaque per-request API token.
const tokenHeader = "X-Token"

// compressThreshold is the body size above which POST bodies are
// gzip-compressed when compression is enabled.
const compressThreshold = 10 << 10

const defaultTimeout = 60 * time.Second

// Config holds transport settings.
type Config struct {
	Token    string
	BaseURL  string
	Compress bool
	HTTP     *http.Client
	Logger   *zap.Logger
}

// Client performs HTTP requests against the TextWave API.
type Client struct {
	token    string
	baseURL  string
	compress bool
	http     *http.Client
	logger   *zap.Logger
}

// New creates a transport client. Zero-value fields get defaults.
func New(cfg Config) *Client {
	c := &Client{
		token:    cfg.Token,
		baseURL:  cfg.BaseURL,
		compress: cfg.Compress,
		http:     cfg.HTTP,
		logger:   cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Get issues a GET request and decodes the JSON response into out.
// A nil out discards the body.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, params, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response
// into out. A nil out discards the body.
func (c *Client) Post(ctx context.Context, endpoint string, params url.Values, body, out any) error {
	return c.request(ctx, http.MethodPost, endpoint, params, body, out)
}

func (c *Client) request(ctx context.Context, method, endpoint string, params url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, endpoint, params, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("api response",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_len", len(data)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrDecode, method, endpoint, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, params url.Values, body any) (*http.Request, error) {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		sep := "?"
		if containsQuery(endpoint) {
			sep = "&"
		}
		u += sep + params.Encode()
	}

	var reader io.Reader
	compressed := false
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		if c.compress && len(data) > compressThreshold {
			data, err = gzipBytes(data)
			if err != nil {
				return nil, fmt.Errorf("compress request body: %w", err)
			}
			compressed = true
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "textwave-go/"+version.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		if compressed {
			req.Header.Set("Content-Encoding", "gzip")
		}
	}
	return req, nil
}

// errorMessage extracts the "message" field from a JSON error body,
// falling back to the raw body text.
func errorMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(body)
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func containsQuery(endpoint string) bool {
	return strings.ContainsRune(endpoint, '?')
}
