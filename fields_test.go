package missions

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestLookupFieldModel(t *testing.T) {
	for _, name := range []string{"corotation_wind", "dipole_b"} {
		m, ok := LookupFieldModel(name)
		if !ok {
			t.Fatalf("%s should be available", name)
		}
		if m.Name() != name {
			t.Fatalf("name mismatch: %s vs %s", m.Name(), name)
		}
	}
	if _, ok := LookupFieldModel("quasi_dipole"); ok {
		t.Fatal("unknown models must report unavailable, not error later")
	}
}

func TestCorotationWind(t *testing.T) {
	s := &StateSeries{PosECEF: [][]float64{{7000, 0, 0}, {0, 0, 7000}}}
	wind, err := CorotationWind{}.Evaluate(s)
	if err != nil {
		t.Fatal(err)
	}
	// On the equator the corotation wind blows east at ωr.
	expected := []float64{0, EarthRotationRate * 7000, 0}
	if !floats.EqualApprox(wind[0], expected, 1e-12) {
		t.Fatalf("equator: got %+v", wind[0])
	}
	// On the rotation axis the atmosphere is at rest.
	if Norm(wind[1]) != 0 {
		t.Fatalf("pole: got %+v", wind[1])
	}
}

func TestDipoleField(t *testing.T) {
	s := &StateSeries{PosECEF: [][]float64{
		{Earth.Radius, 0, 0},
		{0, 0, Earth.Radius},
		{2 * Earth.Radius, 0, 0},
	}}
	b, err := DipoleField{}.Evaluate(s)
	if err != nil {
		t.Fatal(err)
	}
	// Equatorial surface field points north (+Z) at b0.
	if !floats.EqualApprox(b[0], []float64{0, 0, b0}, 1e-9) {
		t.Fatalf("equator: got %+v", b[0])
	}
	// Polar field is twice as strong and radial.
	if !floats.EqualWithinAbs(Norm(b[1]), 2*b0, 1e-9) {
		t.Fatalf("pole magnitude: got %f", Norm(b[1]))
	}
	if !floats.EqualWithinAbs(b[1][2], -2*b0, 1e-9) {
		t.Fatalf("pole direction: got %+v", b[1])
	}
	// Field falls off as 1/r³.
	if !floats.EqualWithinAbs(Norm(b[2]), b0/8, 1e-9) {
		t.Fatalf("falloff: got %f", Norm(b[2]))
	}
}

func TestDipoleFieldAtOrigin(t *testing.T) {
	s := &StateSeries{PosECEF: [][]float64{{0, 0, 0}}}
	_, err := DipoleField{}.Evaluate(s)
	var zve ZeroVectorError
	if !errors.As(err, &zve) {
		t.Fatalf("expected ZeroVectorError, got %v", err)
	}
}

func TestFieldProjection(t *testing.T) {
	// An equatorial dipole sample projected onto a nadir-pointing triad lands
	// entirely on the axis aligned with +Z.
	pos := [][]float64{{7000, 0, 0}, {7000 * math.Cos(0.001), 7000 * math.Sin(0.001), 0}, {7000 * math.Cos(0.002), 7000 * math.Sin(0.002), 0}}
	vel := [][]float64{{0, 7.5, 0}, {-7.5 * math.Sin(0.001), 7.5 * math.Cos(0.001), 0}, {-7.5 * math.Sin(0.002), 7.5 * math.Cos(0.002), 0}}
	frames, err := BuildAttitudeFrames(pos, vel)
	if err != nil {
		t.Fatal(err)
	}
	s := &StateSeries{PosECEF: pos}
	b, err := DipoleField{}.Evaluate(s)
	if err != nil {
		t.Fatal(err)
	}
	px, py, pz, err := ProjectOntoFrame(b, frames)
	if err != nil {
		t.Fatal(err)
	}
	for i := range px {
		if !floats.EqualWithinAbs(px[i], 0, 1e-6) || !floats.EqualWithinAbs(pz[i], 0, 1e-6) {
			t.Fatalf("sample %d: in-plane dipole components should vanish, got %f %f", i, px[i], pz[i])
		}
		if !floats.EqualWithinAbs(py[i], -Norm(b[i]), 1e-6) {
			t.Fatalf("sample %d: field should land on the cross-track axis, got %f", i, py[i])
		}
	}
}
