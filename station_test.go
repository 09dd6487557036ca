package missions

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestStationOverhead(t *testing.T) {
	st := NewStation("boulder", 0, 10, 40.01, -105.24)
	// A satellite directly above the station, 400 km up.
	sat := GEO2ECEF(400, st.LatΦ, st.Longθ)
	_, ρ, el, _ := st.RangeElAz(sat)
	if !floats.EqualWithinAbs(ρ, 400, 1e-9) {
		t.Fatalf("range: got %f", ρ)
	}
	if !floats.EqualWithinAbs(el, 90, 1e-6) {
		t.Fatalf("elevation: got %f", el)
	}
}

func TestStationHorizon(t *testing.T) {
	st := NewStation("mcmurdo", 0, 10, -77.8, 166.7)
	// The antipodal point is far below the horizon.
	anti := GEO2ECEF(400, -st.LatΦ, st.Longθ+math.Pi)
	_, _, el, _ := st.RangeElAz(anti)
	if el > 0 {
		t.Fatalf("antipodal elevation should be negative, got %f", el)
	}
}

func TestStationObserve(t *testing.T) {
	st := NewStation("kiruna", 0, 5, 67.86, 20.96)
	series := &StateSeries{
		PosECEF: [][]float64{
			GEO2ECEF(400, st.LatΦ, st.Longθ),
			GEO2ECEF(400, -st.LatΦ, st.Longθ+math.Pi),
		},
		VelECEF: [][]float64{{0, 0, 0}, {0, 0, 0}},
	}
	obs := st.Observe(series)
	if len(obs) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs))
	}
	if !obs[0].Visible || obs[1].Visible {
		t.Fatalf("visibility mask wrong: %+v", obs)
	}
	// The overhead sample is at rest relative to the station frame, so the
	// range rate is the projection of -V onto the local vertical: the station
	// velocity is horizontal, hence zero.
	if !floats.EqualWithinAbs(obs[0].RangeRate, 0, 1e-9) {
		t.Fatalf("range rate: got %f", obs[0].RangeRate)
	}
}

func TestNoisyStationDiffers(t *testing.T) {
	st := NewNoisyStation("dss34", 0.691750, 6, -35.398333, 148.981944, 5e-3, 5e-6)
	series := &StateSeries{
		PosECEF: [][]float64{GEO2ECEF(400, st.LatΦ, st.Longθ)},
		VelECEF: [][]float64{{1, 0, 0}},
	}
	obs := st.Observe(series)[0]
	if obs.Range == obs.TrueRange && obs.RangeRate == obs.TrueRangeRate {
		t.Fatal("noisy station returned noiseless observations")
	}
	if math.Abs(obs.Range-obs.TrueRange) > 1 {
		t.Fatalf("range noise implausibly large: %f", obs.Range-obs.TrueRange)
	}
}
