package client

import (
	apierrors "github.com/lightcal/lightcal/client/internal/errors"
)

// TransportError is the only error kind a Call fails with. StatusCode is 0 when
// no response was received.
type TransportError = apierrors.TransportError

// IsTransportError reports whether err is, or wraps, a *TransportError.
func IsTransportError(err error) bool { return apierrors.IsTransportError(err) }
