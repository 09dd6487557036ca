package missions

import (
	"fmt"
	"sort"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/soniakeys/meeus/julian"
)

// StateSeries holds the per-timestamp spacecraft state expressed in every
// frame the pipeline produces. It is a plain struct-of-arrays value: nothing
// mutates it after RunFramePipeline returns, and units live in the field
// documentation rather than in a metadata registry (see Describe for the
// optional side-channel).
type StateSeries struct {
	Times []time.Time
	JD    []float64

	// Inertial (TEME) and Earth-fixed Cartesian state, km and km/s.
	PosECI, VelECI   [][]float64
	PosECEF, VelECEF [][]float64

	// Geocentric spherical: latitude and longitude in degrees, radius from
	// the center of the body in km.
	GeoLat, GeoLon, GeoRadius []float64

	// Geodetic, WGS-84: latitude and longitude in degrees, height above the
	// ellipsoid in km.
	GeodLat, GeodLon, GeodAlt []float64
}

// Len returns the number of samples in the series.
func (s *StateSeries) Len() int {
	return len(s.Times)
}

// RunFramePipeline drives the propagator once over the whole grid and
// expresses the resulting state in Earth-fixed Cartesian, geocentric
// spherical and geodetic coordinates.
//
// If any sample carries a nonzero propagation status, the pipeline fails
// before producing a single state: partial recovery is never attempted. The
// reported code is the lowest nonzero value seen, which is the
// highest-priority failure in the propagator's own ordering.
func RunFramePipeline(grid TimeGrid, prop Propagator) (*StateSeries, error) {
	n := grid.Len()
	if n == 0 {
		return nil, fmt.Errorf("empty time grid")
	}

	jds := make([]float64, n)
	for i, t := range grid.Times {
		jds[i] = julian.TimeToJD(t.UTC())
	}

	codes, pos, vel, err := prop.Propagate(jds)
	if err != nil {
		return nil, fmt.Errorf("propagator call failed: %w", err)
	}

	if distinct := nonzeroCodes(codes); len(distinct) > 0 {
		return nil, PropagationError{Code: distinct[0], Codes: distinct}
	}

	// The series owns its timestamps: the caller keeps mutating rights over
	// its own grid.
	times := make([]time.Time, n)
	copy(times, grid.Times)

	s := &StateSeries{
		Times:     times,
		JD:        jds,
		PosECI:    pos,
		VelECI:    vel,
		PosECEF:   make([][]float64, n),
		VelECEF:   make([][]float64, n),
		GeoLat:    make([]float64, n),
		GeoLon:    make([]float64, n),
		GeoRadius: make([]float64, n),
		GeodLat:   make([]float64, n),
		GeodLon:   make([]float64, n),
		GeodAlt:   make([]float64, n),
	}

	for i := 0; i < n; i++ {
		θgst := satellite.ThetaG_JD(jds[i])
		rECEF := ECI2ECEF(pos[i], θgst)
		vECEF := ECIVel2ECEF(vel[i], rECEF, θgst)
		s.PosECEF[i] = rECEF
		s.VelECEF[i] = vECEF

		sph := Cartesian2Spherical(rECEF)
		s.GeoRadius[i] = sph[0]
		s.GeoLat[i] = 90 - sph[1]*rad2deg
		s.GeoLon[i] = sph[2] * rad2deg

		// The ellipsoidal conversion works on meter-scale input and returns
		// the height in the units it was given.
		latDeg, lonDeg, altM := ECEF2Geodetic([]float64{rECEF[0] * 1e3, rECEF[1] * 1e3, rECEF[2] * 1e3})
		s.GeodLat[i] = latDeg
		s.GeodLon[i] = lonDeg
		s.GeodAlt[i] = altM / 1e3
	}
	return s, nil
}

// nonzeroCodes returns the distinct nonzero status codes in ascending order.
func nonzeroCodes(codes []int) []int {
	seen := make(map[int]bool)
	for _, c := range codes {
		if c != 0 {
			seen[c] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	distinct := make([]int, 0, len(seen))
	for c := range seen {
		distinct = append(distinct, c)
	}
	sort.Ints(distinct)
	return distinct
}
