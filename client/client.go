package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lightcal/lightcal/client/internal/api"
	"github.com/lightcal/lightcal/client/internal/job"
)

// ErrEmptyBaseURL is returned by the constructors when no base URL is given.
var ErrEmptyBaseURL = errors.New("baseURL cannot be empty")

// --------------------------------------------------------------------
// Shared core
// --------------------------------------------------------------------

// core holds what both clients need to issue requests. It is immutable after
// construction, so calls never share mutable state.
type core struct {
	api     string // metrics label: "profiler" or "wiz"
	baseURL string
	http    *http.Client
	rest    *resty.Client
	reg     prometheus.Registerer
	metrics *metrics
}

func newCore(apiName, baseURL string, opts []Option) (*core, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL %q must include scheme and host", baseURL)
	}

	c := &core{
		api:     apiName,
		baseURL: baseURL,
		http:    &http.Client{},
		reg:     prometheus.DefaultRegisterer,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.metrics = newMetrics(c.reg)
	c.rest = resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetLogger(restyLogger{})
	return c, nil
}

// issue starts one request on its own goroutine and returns its handle.
func (c *core) issue(ctx context.Context, endpoint string, fn func(context.Context, *resty.Client) (json.RawMessage, error)) *Call {
	id := uuid.NewString()
	c.metrics.requests.WithLabelValues(c.api, endpoint).Inc()

	return start(id, func() (json.RawMessage, error) {
		body, err := job.New(func(jobCtx context.Context) (json.RawMessage, error) {
			return fn(api.WithRequestID(jobCtx, id), c.rest)
		}).Run(ctx)
		if err != nil {
			c.metrics.failures.WithLabelValues(c.api, endpoint).Inc()
		}
		return body, err
	})
}

// --------------------------------------------------------------------
// Profiler client
// --------------------------------------------------------------------

// ProfilerClient talks to the profiler tool of a multi-channel light module.
type ProfilerClient struct {
	c *core
}

// NewProfilerClient constructs a ProfilerClient for the tool served at baseURL
// (for example "http://localhost:8081").
func NewProfilerClient(baseURL string, opts ...Option) (*ProfilerClient, error) {
	c, err := newCore("profiler", baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &ProfilerClient{c: c}, nil
}

// BaseURL returns the normalized base URL requests are sent to.
func (p *ProfilerClient) BaseURL() string { return p.c.baseURL }

// GetChannels requests the number of channels of the profiled module.
func (p *ProfilerClient) GetChannels(ctx context.Context) *Call {
	return p.c.issue(ctx, "getChannels", api.GetChannels)
}

// LAB2sRGB asks the tool to convert lab to sRGB. Decode the result into a StandardRGB.
func (p *ProfilerClient) LAB2sRGB(ctx context.Context, lab LAB) *Call {
	return p.c.issue(ctx, "LAB2sRGB", func(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
		return api.LAB2sRGB(ctx, rc, lab)
	})
}

// SetDCSVector sets the light to v.
func (p *ProfilerClient) SetDCSVector(ctx context.Context, v DCSVector) *Call {
	return p.c.issue(ctx, "setDCSVector", func(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
		return api.SetDCSVector(ctx, rc, v)
	})
}

// DCS2LAB asks the tool to predict the LAB color of v. Decode the result into a LABResult.
func (p *ProfilerClient) DCS2LAB(ctx context.Context, v DCSVector) *Call {
	return p.c.issue(ctx, "DCS2LAB", func(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
		return api.DCS2LAB(ctx, rc, v)
	})
}

// AddDataPoint records that the linear vector v was measured as lab.
// The body is {"LinDCSVector": v, "L": lab.L, "A": lab.A, "B": lab.B}.
func (p *ProfilerClient) AddDataPoint(ctx context.Context, v DCSVector, lab LAB) *Call {
	return p.c.issue(ctx, "addDataPoint", func(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
		return api.AddProfilerDataPoint(ctx, rc, v, lab)
	})
}

// --------------------------------------------------------------------
// WiZ profiling client
// --------------------------------------------------------------------

// WizClient talks to the WiZ profiling tool. Payloads are passed through as given;
// RGBWValue and WizDataPoint match what the tool currently decodes.
type WizClient struct {
	c *core
}

// NewWizClient constructs a WizClient for the tool served at baseURL.
func NewWizClient(baseURL string, opts ...Option) (*WizClient, error) {
	c, err := newCore("wiz", baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &WizClient{c: c}, nil
}

// BaseURL returns the normalized base URL requests are sent to.
func (w *WizClient) BaseURL() string { return w.c.baseURL }

// SetRGBW sets the light channels. A nil data sends no body.
func (w *WizClient) SetRGBW(ctx context.Context, data any) *Call {
	return w.c.issue(ctx, "setRGBW", func(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
		return api.SetRGBW(ctx, rc, data)
	})
}

// AddDataPoint sends a measurement. A nil data sends no body.
func (w *WizClient) AddDataPoint(ctx context.Context, data any) *Call {
	return w.c.issue(ctx, "addDataPoint", func(ctx context.Context, rc *resty.Client) (json.RawMessage, error) {
		return api.AddWizDataPoint(ctx, rc, data)
	})
}
