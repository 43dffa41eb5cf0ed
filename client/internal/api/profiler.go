package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/lightcal/lightcal/client/internal/types"
)

// Profiler tool endpoints.
const (
	PathGetChannels          = "/api/getChannels"
	PathLAB2sRGB             = "/api/LAB2sRGB"
	PathSetDCSVector         = "/api/setDCSVector"
	PathDCS2LAB              = "/api/DCS2LAB"
	PathProfilerAddDataPoint = "/api/addDataPoint"
)

// GetChannels asks for the channel count of the profiled module. No body is sent.
func GetChannels(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
	return Do(ctx, rc, http.MethodGet, PathGetChannels, nil)
}

// LAB2sRGB converts a LAB color to sRGB on the server.
func LAB2sRGB(ctx context.Context, rc *resty.Client, lab types.LAB) (json.RawMessage, error) {
	return Do(ctx, rc, http.MethodPost, PathLAB2sRGB, lab)
}

// SetDCSVector drives the light with the given vector.
func SetDCSVector(ctx context.Context, rc *resty.Client, v types.DCSVector) (json.RawMessage, error) {
	return Do(ctx, rc, http.MethodPost, PathSetDCSVector, v)
}

// DCS2LAB predicts the LAB color of a vector with the current fit.
func DCS2LAB(ctx context.Context, rc *resty.Client, v types.DCSVector) (json.RawMessage, error) {
	return Do(ctx, rc, http.MethodPost, PathDCS2LAB, v)
}

// AddProfilerDataPoint records a measured LAB color for a linear DCS vector.
func AddProfilerDataPoint(ctx context.Context, rc *resty.Client, v types.DCSVector, lab types.LAB) (json.RawMessage, error) {
	return Do(ctx, rc, http.MethodPost, PathProfilerAddDataPoint, types.NewProfilerDataPoint(v, lab))
}
