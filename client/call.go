package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// Call is the pending result of a single request. Every client method returns
// one immediately; the request runs in the background.
//
// A Call ends in exactly one of two states: success with the raw response body,
// or failure with a *TransportError. Calls are independent of each other and
// complete in no particular order.
type Call struct {
	id   string
	done chan struct{}

	// Written once before done is closed.
	body json.RawMessage
	err  error
}

func start(id string, run func() (json.RawMessage, error)) *Call {
	c := &Call{id: id, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		c.body, c.err = run()
	}()
	return c
}

// ID identifies the request. It is also sent as the X-Request-ID header.
func (c *Call) ID() string { return c.id }

// Done is closed once the request has finished.
func (c *Call) Done() <-chan struct{} { return c.done }

// Result blocks until the request finishes or ctx is done.
//
// ctx only bounds the wait: when it expires the request keeps running and
// Result can be called again.
func (c *Call) Result(ctx context.Context) (json.RawMessage, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return c.body, c.err
	}
}

// Err returns the failure of a finished call, or nil while it is pending or if it succeeded.
func (c *Call) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Decode waits for the result and unmarshals the response body into dst.
// An empty body leaves dst untouched.
func (c *Call) Decode(ctx context.Context, dst any) error {
	body, err := c.Result(ctx)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
