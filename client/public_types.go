package client

import "github.com/lightcal/lightcal/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	LAB               = types.LAB
	DCSVector         = types.DCSVector
	ProfilerDataPoint = types.ProfilerDataPoint
	RGBWValue         = types.RGBWValue
	XYZ               = types.XYZ
	WizDataPoint      = types.WizDataPoint

	// Responses
	StandardRGB = types.StandardRGB
	LABResult   = types.LABResult
)
