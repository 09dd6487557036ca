package missions

import (
	"testing"
	"time"

	"github.com/soniakeys/meeus/julian"
)

func testGridJDs(t *testing.T, samples int) []float64 {
	t.Helper()
	grid, err := NewTimeGrid(time.Date(2018, 5, 16, 0, 0, 0, 0, time.UTC), 10*time.Second, samples)
	if err != nil {
		t.Fatal(err)
	}
	jds := make([]float64, grid.Len())
	for i, tm := range grid.Times {
		jds[i] = julian.TimeToJD(tm)
	}
	return jds
}

func TestSGP4Propagate(t *testing.T) {
	prop, err := NewSGP4FromTLE(issTLE1, issTLE2)
	if err != nil {
		t.Fatal(err)
	}
	jds := testGridJDs(t, 90)
	codes, pos, vel, err := prop.Propagate(jds)
	if err != nil {
		t.Fatal(err)
	}
	for i, code := range codes {
		if code != StatusOK {
			t.Fatalf("sample %d failed with status %d", i, code)
		}
		r := Norm(pos[i])
		if r < 6500 || r > 7100 {
			t.Fatalf("sample %d position norm %f km is not LEO", i, r)
		}
		v := Norm(vel[i])
		if v < 7 || v > 8.5 {
			t.Fatalf("sample %d velocity norm %f km/s is implausible", i, v)
		}
	}
}

func TestSGP4WorkersDeterminism(t *testing.T) {
	prop, err := NewSGP4FromTLE(issTLE1, issTLE2)
	if err != nil {
		t.Fatal(err)
	}
	jds := testGridJDs(t, 257)
	_, posSeq, velSeq, err := prop.Propagate(jds)
	if err != nil {
		t.Fatal(err)
	}
	prop.Workers = 4
	_, posPar, velPar, err := prop.Propagate(jds)
	if err != nil {
		t.Fatal(err)
	}
	for i := range jds {
		for j := 0; j < 3; j++ {
			if posSeq[i][j] != posPar[i][j] || velSeq[i][j] != velPar[i][j] {
				t.Fatalf("parallel run differs at sample %d", i)
			}
		}
	}
}

func TestSGP4FromSpec(t *testing.T) {
	spec := OrbitSpec{
		AltPeriapsis: Float64(400),
		AltApoapsis:  Float64(850),
		Inclination:  Float64(51.6),
	}
	prop, err := NewSGP4FromSpec(spec, "Earth")
	if err != nil {
		t.Fatal(err)
	}
	jds := testGridJDs(t, 10)
	codes, pos, _, err := prop.Propagate(jds)
	if err != nil {
		t.Fatal(err)
	}
	for i := range codes {
		if codes[i] != StatusOK {
			t.Fatalf("sample %d failed with status %d", i, codes[i])
		}
		alt := Norm(pos[i]) - Earth.Radius
		if alt < 350 || alt > 950 {
			t.Fatalf("sample %d altitude %f km outside the 400x850 orbit", i, alt)
		}
	}
	if _, err := NewSGP4FromSpec(OrbitSpec{Inclination: Float64(51.6)}, "Earth"); err == nil {
		t.Fatal("incomplete spec should not produce a propagator")
	}
}
