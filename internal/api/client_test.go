package api

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/textwave/textwave-go/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{Token: "test-token", BaseURL: srv.URL, Compress: true})
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	})

	var out map[string]any
	if err := c.Get(context.Background(), "/sentiment/analysis", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Get("X-Token") != "test-token" {
		t.Errorf("X-Token = %q, want test-token", got.Get("X-Token"))
	}
	if got.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", got.Get("Accept"))
	}
	if !strings.HasPrefix(got.Get("User-Agent"), "textwave-go/") {
		t.Errorf("User-Agent = %q, want textwave-go/ prefix", got.Get("User-Agent"))
	}
}

func TestQueryParams(t *testing.T) {
	var gotURL *url.URL
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL
		w.Write([]byte(`{}`))
	})

	params := url.Values{}
	params.Set("alpha", "0.8")
	params.Set("beta", "0.45")
	var out map[string]any
	if err := c.Get(context.Background(), "/cluster/analysis/t1", params, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotURL.Path != "/cluster/analysis/t1" {
		t.Errorf("path = %q", gotURL.Path)
	}
	if gotURL.Query().Get("alpha") != "0.8" || gotURL.Query().Get("beta") != "0.45" {
		t.Errorf("query = %q", gotURL.RawQuery)
	}
}

func TestQueryParams_EndpointAlreadyHasQuery(t *testing.T) {
	var gotURL *url.URL
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL
		w.Write([]byte(`{}`))
	})

	params := url.Values{}
	params.Set("top_k", "5")
	var out map[string]any
	if err := c.Post(context.Background(), "/sentiment/analysis?auto", params, []string{"x"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := gotURL.Query()
	if _, ok := q["auto"]; !ok {
		t.Errorf("bare query flag lost: %q", gotURL.RawQuery)
	}
	if q.Get("top_k") != "5" {
		t.Errorf("top_k = %q, want 5", q.Get("top_k"))
	}
}

func TestPost_SmallBodyNotCompressed(t *testing.T) {
	var encoding string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		encoding = r.Header.Get("Content-Encoding")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	})

	var out map[string]any
	if err := c.Post(context.Background(), "/classify/analysis", nil, []string{"short"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encoding != "" {
		t.Errorf("Content-Encoding = %q, want empty for small body", encoding)
	}
	var decoded []string
	if err := json.Unmarshal(gotBody, &decoded); err != nil || decoded[0] != "short" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestPost_LargeBodyGzipped(t *testing.T) {
	var encoding string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		encoding = r.Header.Get("Content-Encoding")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	})

	big := []string{strings.Repeat("a", 20<<10)}
	var out map[string]any
	if err := c.Post(context.Background(), "/tag/analysis", nil, big, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encoding != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", encoding)
	}

	zr, err := gzip.NewReader(strings.NewReader(string(gotBody)))
	if err != nil {
		t.Fatalf("body is not valid gzip: %v", err)
	}
	plain, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	var decoded []string
	if err := json.Unmarshal(plain, &decoded); err != nil || len(decoded[0]) != 20<<10 {
		t.Errorf("decompressed body does not round-trip")
	}
}

func TestPost_CompressionDisabled(t *testing.T) {
	var encoding string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encoding = r.Header.Get("Content-Encoding")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	c := New(Config{Token: "t", BaseURL: srv.URL, Compress: false})

	big := []string{strings.Repeat("a", 20<<10)}
	var out map[string]any
	if err := c.Post(context.Background(), "/tag/analysis", nil, big, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encoding != "" {
		t.Errorf("Content-Encoding = %q, want empty when compression is off", encoding)
	}
}

func TestAPIError_MessageField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "token invalid", "status": 403}`))
	})

	err := c.Get(context.Background(), "/sentiment/analysis", nil, nil)
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", apiErr.StatusCode)
	}
	if apiErr.Message != "token invalid" {
		t.Errorf("message = %q, want token invalid", apiErr.Message)
	}
}

func TestAPIError_RawBodyFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	})

	err := c.Get(context.Background(), "/sentiment/analysis", nil, nil)
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("message = %q, want raw body", apiErr.Message)
	}
}

func TestDecodeErrorTagged(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	})

	var out map[string]any
	err := c.Get(context.Background(), "/cluster/clear/t1", nil, &out)
	if !errors.Is(err, domain.ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestNilOutDiscardsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json either`))
	})

	if err := c.Get(context.Background(), "/cluster/clear/t1", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	c := New(Config{Token: "t"})
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.http == nil || c.logger == nil {
		t.Error("http client and logger must get defaults")
	}
}
