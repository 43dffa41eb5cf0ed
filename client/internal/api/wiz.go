package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// WiZ profiling tool endpoints.
const (
	PathSetRGBW         = "/api/setRGBW"
	PathWizAddDataPoint = "/api/addDataPoint"
)

// SetRGBW sends data to the light unmodified.
func SetRGBW(ctx context.Context, rc *resty.Client, data any) (json.RawMessage, error) {
	return Do(ctx, rc, http.MethodPost, PathSetRGBW, data)
}

// AddWizDataPoint sends a measurement unmodified.
func AddWizDataPoint(ctx context.Context, rc *resty.Client, data any) (json.RawMessage, error) {
	return Do(ctx, rc, http.MethodPost, PathWizAddDataPoint, data)
}
