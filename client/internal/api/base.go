package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/lightcal/lightcal/client/internal/errors"
)

// Header names set on every request.
const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderPragma       = "Pragma"
	HeaderRequestID    = "X-Request-ID"
)

type requestIDKey struct{}

// WithRequestID attaches an ID that Do sends as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the ID attached with WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Do issues exactly one request and returns the raw response body.
//
// A nil body sends no payload; anything else is sent as its JSON encoding.
// Responses are not cached and never retried. Any failure, including a non-2xx
// status, is returned as a *errors.TransportError.
func Do(ctx context.Context, rc *resty.Client, method, path string, body any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewNetworkError(method, path, err)
	}

	req := rc.R().
		SetContext(ctx).
		SetHeader(HeaderContentType, "application/json").
		SetHeader(HeaderCacheControl, "no-cache").
		SetHeader(HeaderPragma, "no-cache")
	if id := RequestIDFrom(ctx); id != "" {
		req.SetHeader(HeaderRequestID, id)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apierrors.NewNetworkError(method, path, fmt.Errorf("encode body: %w", err))
		}
		req.SetBody(payload)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, apierrors.NewNetworkError(method, path, err)
	}
	if !resp.IsSuccess() {
		return nil, apierrors.NewHTTPError(method, path, resp.StatusCode(), resp.String())
	}
	return json.RawMessage(resp.Body()), nil
}
