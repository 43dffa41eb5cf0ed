package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	apierrors "github.com/lightcal/lightcal/client/internal/errors"
	"github.com/lightcal/lightcal/client/internal/types"
)

func TestDo_HeadersAndBody(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, `{"ok":true}`)
	ctx := WithRequestID(context.Background(), "req-1")

	got, err := Do(ctx, rec.client(), http.MethodPost, "/api/anything", map[string]int{"x": 1})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(got) != `{"ok":true}` {
		t.Fatalf("unexpected response body %q", got)
	}

	req := rec.only(t)
	if req.Method != http.MethodPost || req.Path != "/api/anything" {
		t.Fatalf("unexpected request line: %s %s", req.Method, req.Path)
	}
	if req.Body != `{"x":1}` {
		t.Fatalf("unexpected body %q", req.Body)
	}
	if ct := req.Header.Get(HeaderContentType); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cc := req.Header.Get(HeaderCacheControl); cc != "no-cache" {
		t.Fatalf("unexpected cache control %q", cc)
	}
	if id := req.Header.Get(HeaderRequestID); id != "req-1" {
		t.Fatalf("unexpected request id %q", id)
	}
}

func TestDo_NilBodySendsNothing(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, "")
	if _, err := Do(context.Background(), rec.client(), http.MethodPost, "/api/x", nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	req := rec.only(t)
	if req.Body != "" {
		t.Fatalf("expected empty body, got %q", req.Body)
	}
	if req.Header.Get(HeaderRequestID) != "" {
		t.Fatalf("no request id expected without WithRequestID")
	}
}

func TestDo_NonSuccessStatus(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusInternalServerError, "failed to set light color")
	_, err := Do(context.Background(), rec.client(), http.MethodPost, PathSetDCSVector, types.DCSVector{1})
	var te *apierrors.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.StatusCode != http.StatusInternalServerError || te.Body != "failed to set light color" {
		t.Fatalf("unexpected error fields: %+v", te)
	}
	if len(rec.requests()) != 1 {
		t.Fatalf("expected no retry, server saw %d requests", len(rec.requests()))
	}
}

func TestDo_HTTPDoError(t *testing.T) {
	t.Parallel()
	_, err := Do(context.Background(), failingClient(), http.MethodGet, PathGetChannels, nil)
	var te *apierrors.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.StatusCode != 0 {
		t.Fatalf("network error must not carry a status, got %d", te.StatusCode)
	}
}

func TestDo_CtxCanceled(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Do(ctx, rec.client(), http.MethodGet, PathGetChannels, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if n := len(rec.requests()); n != 0 {
		t.Fatalf("no request expected, server saw %d", n)
	}
}

func TestDo_EncodeError(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, "")
	_, err := Do(context.Background(), rec.client(), http.MethodPost, PathDCS2LAB, types.DCSVector{math.NaN()})
	if !apierrors.IsTransportError(err) {
		t.Fatalf("expected TransportError for unencodable body, got %v", err)
	}
	if n := len(rec.requests()); n != 0 {
		t.Fatalf("no request expected, server saw %d", n)
	}
}
