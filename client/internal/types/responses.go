package types

// ------------------------------
// Response Types
// ------------------------------
//
// The wrapper never decodes responses on its own. These mirror what the
// profiling tools currently send back and are only used through Call.Decode.

// StandardRGB is the sRGB color returned by LAB2sRGB. Components are in [0, 1].
type StandardRGB struct {
	R float64 `json:"R"`
	G float64 `json:"G"`
	B float64 `json:"B"`
}

// LABResult is the color returned by DCS2LAB, including the white point it is relative to.
type LABResult struct {
	L          float64 `json:"L"`
	A          float64 `json:"A"`
	B          float64 `json:"B"`
	WhitePoint XYZ     `json:"WhitePoint"`
}

// LAB drops the white point.
func (r LABResult) LAB() LAB {
	return LAB{L: r.L, A: r.A, B: r.B}
}
