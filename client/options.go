package client

// This file defines functional options that configure a client during
// construction. Both ProfilerClient and WizClient accept the same options.

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a client during construction.
//
// Options are applied in order, so WithHTTPClient should come before options
// that modify the HTTP client (timeout, debug logging).
type Option func(*core) error

// WithHTTPClient replaces the underlying http.Client. The client is used as is;
// the SDK adds no retry or caching layer on top of it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *core) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// By default there is no timeout; requests are bounded only by the context
// passed to each method. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *core) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
// Do not enable this option in production environments as it dumps full
// request and response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *core) error {
		if enabled {
			if _, ok := c.http.Transport.(*debugTransport); ok {
				return nil
			}
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithRegisterer registers the client's metrics with reg instead of
// prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *core) error {
		if reg == nil {
			return errors.New("registerer cannot be nil")
		}
		c.reg = reg
		return nil
	}
}
