// Package transport provides the network capability used by the invoker:
// GET a URI, or POST form fields to it, and return the raw response body.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/chemspider/chemspider-sdk-go/pkg/uri"
	"go.uber.org/zap"
)

// Transport issues one request per call and returns the response body.
type Transport interface {
	// Fetch sends a GET request to u.
	Fetch(ctx context.Context, u *url.URL) ([]byte, error)
	// Submit sends a POST request to u with form as an
	// application/x-www-form-urlencoded body.
	Submit(ctx context.Context, u *url.URL, form model.Params) ([]byte, error)
}

// HTTPDoer captures the subset of *http.Client the transport relies on, so
// tests can inject fakes.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a non-2xx response. Body holds the (trimmed) response
// text, which ASMX services use to describe the failure.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// HTTP is the production Transport.
type HTTP struct {
	// Client performs the requests; http.DefaultClient when nil.
	Client HTTPDoer
	// UserAgent is sent with every request when not empty.
	UserAgent string
}

// NewHTTP returns an HTTP transport using client and userAgent.
func NewHTTP(client HTTPDoer, userAgent string) *HTTP {
	return &HTTP{Client: client, UserAgent: userAgent}
}

// Fetch implements Transport.
func (t *HTTP) Fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	return t.do(req)
}

// Submit implements Transport. The body is encoded exactly like a GET query
// string, preserving parameter order.
func (t *HTTP) Submit(ctx context.Context, u *url.URL, form model.Params) ([]byte, error) {
	body := uri.EncodeQuery(form)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewBufferString(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return t.do(req)
}

func (t *HTTP) do(req *http.Request) ([]byte, error) {
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	zap.L().Debug("sending request", zap.String("method", req.Method), zap.String("url", req.URL.String()))
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("received response",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}
