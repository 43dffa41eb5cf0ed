package types

// ------------------------------
// Request Types
// ------------------------------

// LAB is a color in the CIE 1976 L*a*b* space.
type LAB struct {
	L float64 `json:"L"`
	A float64 `json:"A"`
	B float64 `json:"B"`
}

// DCSVector holds linear device color space values, one per light channel.
type DCSVector []float64

// ProfilerDataPoint pairs a linear DCS vector with the LAB color measured for it.
// Its JSON form is the flat object {LinDCSVector, L, A, B}.
type ProfilerDataPoint struct {
	LinDCSVector DCSVector `json:"LinDCSVector"`
	L            float64   `json:"L"`
	A            float64   `json:"A"`
	B            float64   `json:"B"`
}

// NewProfilerDataPoint flattens lab next to the vector.
func NewProfilerDataPoint(v DCSVector, lab LAB) ProfilerDataPoint {
	return ProfilerDataPoint{LinDCSVector: v, L: lab.L, A: lab.A, B: lab.B}
}

// RGBWValue is a raw channel setting of a WiZ light.
// White is split into cold white (CW) and warm white (WW).
type RGBWValue struct {
	R  uint8 `json:"R"`
	G  uint8 `json:"G"`
	B  uint8 `json:"B"`
	CW uint8 `json:"CW"`
	WW uint8 `json:"WW"`
}

// XYZ is a CIE 1931 XYZ measurement.
type XYZ struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// WizDataPoint pairs an RGBW setting with the color measured for it.
// Both embedded structs are flattened into a single JSON object.
type WizDataPoint struct {
	RGBWValue
	XYZ
}
