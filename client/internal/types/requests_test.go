package types

import (
	"encoding/json"
	"testing"
)

func TestProfilerDataPoint_FlatShape(t *testing.T) {
	t.Parallel()
	dp := NewProfilerDataPoint(DCSVector{0.1, 0.2, 0.3}, LAB{L: 50, A: 0, B: 0})
	got, err := json.Marshal(dp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"LinDCSVector":[0.1,0.2,0.3],"L":50,"A":0,"B":0}`
	if string(got) != want {
		t.Fatalf("body mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestWizDataPoint_Flattened(t *testing.T) {
	t.Parallel()
	dp := WizDataPoint{
		RGBWValue: RGBWValue{R: 255, CW: 13},
		XYZ:       XYZ{X: 0.339, Y: 0.178, Z: 0.02},
	}
	got, err := json.Marshal(dp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"R":255,"G":0,"B":0,"CW":13,"WW":0,"X":0.339,"Y":0.178,"Z":0.02}`
	if string(got) != want {
		t.Fatalf("body mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestLABResult_LAB(t *testing.T) {
	t.Parallel()
	var r LABResult
	if err := json.Unmarshal([]byte(`{"L":41.1,"A":51,"B":48,"WhitePoint":{"X":0.95,"Y":1,"Z":1.09}}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := r.LAB(); got != (LAB{L: 41.1, A: 51, B: 48}) {
		t.Fatalf("unexpected LAB: %+v", got)
	}
	if r.WhitePoint.Y != 1 {
		t.Fatalf("white point not decoded: %+v", r.WhitePoint)
	}
}
