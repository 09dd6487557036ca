package missions

import (
	"fmt"
	"math"
	"sync"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/soniakeys/meeus/julian"
)

// Propagation status codes. Zero means success; the nonzero values mirror
// the SGP4 error code ordering, where a lower code is a more fundamental
// failure. The library hides its per-call codes behind a by-value API, so
// failures after initialization are detected from the output itself.
const (
	StatusOK          = 0
	StatusBadElements = 1 // model initialization rejected the elements
	StatusNonFinite   = 4 // propagation produced NaN or Inf
	StatusDecayed     = 6 // position fell below the surface of the body
)

// Propagator turns a Julian-date array into per-sample inertial position and
// velocity plus a per-sample status code, in one vectorized call. The call is
// atomic and never retried: a nonzero status is physically meaningful and
// retrying the same elements cannot succeed.
type Propagator interface {
	Propagate(jds []float64) (codes []int, pos, vel [][]float64, err error)
}

// PropagationError reports nonzero propagator status codes. Code is the
// highest-priority failing code (the lowest nonzero value); Codes carries
// every distinct nonzero code observed across the sample array.
type PropagationError struct {
	Code   int
	Codes  []int
	Reason string
}

func (e PropagationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("propagation failed with code %d: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("propagation failed with code %d (distinct codes %v)", e.Code, e.Codes)
}

// SGP4 is the go-satellite backed Propagator. Position and velocity are
// returned in the TEME inertial frame, in km and km/s.
//
// Workers optionally partitions the sample array across that many
// goroutines. Every sample is computed independently, so the output is
// bit-identical to a single-threaded run.
type SGP4 struct {
	sat     satellite.Satellite
	Workers int
}

// NewSGP4FromTLE initializes the propagator from a two-line-element pair.
// The lines are validated first because the underlying parser is fatal on
// malformed input.
func NewSGP4FromTLE(line1, line2 string) (*SGP4, error) {
	if err := ValidateTLELines(line1, line2); err != nil {
		return nil, err
	}
	// wgs72 is the most commonly used gravity model in the satellite
	// tracking community.
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	if sat.Error != 0 {
		return nil, PropagationError{Code: StatusBadElements, Codes: []int{StatusBadElements}, Reason: sat.ErrorStr}
	}
	return &SGP4{sat: sat}, nil
}

// NewSGP4FromSpec initializes the propagator from an orbit specification.
// A complete Keplerian group takes precedence over a supplied TLE pair and
// is encoded as a synthetic TLE; use ValidateOrbitSpec beforehand to surface
// the both-groups warning.
func NewSGP4FromSpec(spec OrbitSpec, body string) (*SGP4, error) {
	if _, err := ValidateOrbitSpec(spec); err != nil {
		return nil, err
	}
	if spec.AltPeriapsis != nil {
		el, err := spec.Keplerian(body)
		if err != nil {
			return nil, err
		}
		line1, line2 := FormatTLE(el, 1)
		return NewSGP4FromTLE(line1, line2)
	}
	return NewSGP4FromTLE(spec.TLE1, spec.TLE2)
}

// Propagate implements Propagator over the whole Julian-date array.
func (p *SGP4) Propagate(jds []float64) (codes []int, pos, vel [][]float64, err error) {
	n := len(jds)
	codes = make([]int, n)
	pos = make([][]float64, n)
	vel = make([][]float64, n)

	workers := p.Workers
	if workers <= 1 || n < 2 {
		p.propagateRange(jds, codes, pos, vel, 0, n)
		return codes, pos, vel, nil
	}
	if workers > n {
		workers = n
	}
	// Contiguous index partitions into preallocated slices: no
	// synchronization beyond the final wait, and a deterministic result.
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			p.propagateRange(jds, codes, pos, vel, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return codes, pos, vel, nil
}

func (p *SGP4) propagateRange(jds []float64, codes []int, pos, vel [][]float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		t := julian.JDToTime(jds[i]).UTC().Round(time.Second)
		y, mo, d := t.Date()
		h, mi, s := t.Clock()
		r, v := satellite.Propagate(p.sat, y, int(mo), d, h, mi, s)
		pos[i] = []float64{r.X, r.Y, r.Z}
		vel[i] = []float64{v.X, v.Y, v.Z}
		codes[i] = statusOf(pos[i], vel[i])
	}
}

func statusOf(r, v []float64) int {
	for i := 0; i < 3; i++ {
		if math.IsNaN(r[i]) || math.IsInf(r[i], 0) || math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return StatusNonFinite
		}
	}
	if Norm(r) < Earth.Radius {
		return StatusDecayed
	}
	return StatusOK
}
