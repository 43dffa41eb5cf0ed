package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilJobFunc is returned when a JobFunc is nil.
var ErrNilJobFunc = errors.New("nil JobFunc")

// Job is one request whose outcome is a raw response body or an error.
type Job interface {
	Run(ctx context.Context) (json.RawMessage, error)
}

// jobFunc lets us pass plain closures as a Job.
type jobFunc func(context.Context) (json.RawMessage, error)

func (f jobFunc) Run(ctx context.Context) (json.RawMessage, error) {
	if f == nil {
		return nil, fmt.Errorf("jobfunc: %w", ErrNilJobFunc)
	}
	return f(ctx)
}

// New creates a new job function from a closure.
func New(fn func(context.Context) (json.RawMessage, error)) Job {
	return jobFunc(fn)
}
