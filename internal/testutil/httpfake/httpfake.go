// Package httpfake provides an in-memory HTTP client for exercising the
// transport without outbound requests.
package httpfake

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
)

// Request is a captured outgoing request with its body already read.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// FakeDoer returns queued responses in order and records every request.
type FakeDoer struct {
	t testing.TB

	mu        sync.Mutex
	responses []*http.Response
	requests  []Request
	err       error
}

// NewFakeDoer returns a FakeDoer seeded with the responses that should be
// returned for each Do call.
func NewFakeDoer(t testing.TB, responses ...*http.Response) *FakeDoer {
	return &FakeDoer{
		t:         t,
		responses: append([]*http.Response(nil), responses...),
	}
}

// NewFailingDoer returns a FakeDoer whose Do always fails with err.
func NewFailingDoer(t testing.TB, err error) *FakeDoer {
	return &FakeDoer{t: t, err: err}
}

// Do records the request and returns the next queued response.
func (f *FakeDoer) Do(req *http.Request) (*http.Response, error) {
	captured := Request{Method: req.Method, URL: req.URL.String(), Header: req.Header.Clone()}
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			f.t.Fatalf("reading request body: %v", err)
		}
		captured.Body = string(b)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, captured)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		f.t.Fatalf("fake http client has no responses left for request %s %s", req.Method, req.URL.String())
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

// Requests returns the HTTP requests captured so far.
func (f *FakeDoer) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// NewStringResponse builds a minimal http.Response with the provided status
// code and body string.
func NewStringResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// XML wraps body into a 200 response with an XML content type.
func XML(body string) *http.Response {
	resp := NewStringResponse(http.StatusOK, body)
	resp.Header.Set("Content-Type", "text/xml; charset=utf-8")
	return resp
}
