package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewHTTPError(t *testing.T) {
	t.Parallel()
	err := NewHTTPError("POST", "/api/setRGBW", 500, "boom")
	if err.StatusCode != 500 || err.Body != "boom" {
		t.Fatalf("unexpected fields: %+v", err)
	}
	if !strings.Contains(err.Error(), "HTTP 500") || !strings.Contains(err.Error(), "/api/setRGBW") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestNewNetworkError_Unwraps(t *testing.T) {
	t.Parallel()
	err := NewNetworkError("GET", "/api/getChannels", context.Canceled)
	if err.StatusCode != 0 {
		t.Fatalf("network errors carry no status, got %d", err.StatusCode)
	}
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected error chain to contain context.Canceled")
	}
	if strings.Contains(err.Error(), "HTTP") {
		t.Fatalf("network error message should not mention a status: %q", err.Error())
	}
}

func TestIsTransportError(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("call: %w", NewHTTPError("GET", "/x", 404, ""))
	if !IsTransportError(wrapped) {
		t.Fatalf("expected wrapped transport error to be detected")
	}
	if IsTransportError(stderrors.New("other")) {
		t.Fatalf("unexpected detection of plain error")
	}
	if IsTransportError(nil) {
		t.Fatalf("nil is not a transport error")
	}
}
