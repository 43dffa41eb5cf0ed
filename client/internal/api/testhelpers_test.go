package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// seenRequest is what the recording server captured for one request.
type seenRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// recorder is an httptest server that records every request and answers with a fixed status and body.
type recorder struct {
	srv *httptest.Server

	mu   sync.Mutex
	seen []seenRequest
}

func newRecorder(t *testing.T, status int, body string) *recorder {
	t.Helper()
	r := &recorder{}
	r.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.seen = append(r.seen, seenRequest{Method: req.Method, Path: req.URL.Path, Header: req.Header.Clone(), Body: string(b)})
		r.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(r.srv.Close)
	return r
}

func (r *recorder) client() *resty.Client {
	return resty.NewWithClient(r.srv.Client()).SetBaseURL(r.srv.URL)
}

func (r *recorder) requests() []seenRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]seenRequest(nil), r.seen...)
}

// only returns the single recorded request, failing the test if there is not exactly one.
func (r *recorder) only(t *testing.T) seenRequest {
	t.Helper()
	reqs := r.requests()
	if len(reqs) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(reqs))
	}
	return reqs[0]
}

func failingClient() *resty.Client {
	return resty.NewWithClient(&http.Client{Transport: &errRT{}}).SetBaseURL("http://example.com")
}
