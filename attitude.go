package missions

import (
	"fmt"

	"github.com/gonum/floats"
)

// orthoε is the absolute tolerance on the unit norm of the rebuilt nadir
// axis. A violation means position and velocity were geometrically
// degenerate at that sample, which no amount of renormalization can fix.
const orthoε = 1e-9

// AttitudeSeries is the per-sample orthonormal spacecraft body triad,
// expressed in Earth-fixed Cartesian coordinates. XHat points along the
// velocity vector (ram), ZHat toward the center of the body (nadir), and
// YHat completes the right-handed system (generally southward).
type AttitudeSeries struct {
	XHat, YHat, ZHat [][]float64
}

// Len returns the number of samples.
func (a *AttitudeSeries) Len() int {
	return len(a.XHat)
}

// ZeroVectorError is returned when a vector with zero norm is normalized.
type ZeroVectorError struct {
	Index    int
	Quantity string
}

func (e ZeroVectorError) Error() string {
	return fmt.Sprintf("cannot normalize zero %s vector at sample %d", e.Quantity, e.Index)
}

// GeometryDegeneracyError is returned when the rebuilt triad fails the unit
// norm check, naming every offending sample.
type GeometryDegeneracyError struct {
	Indices []int
}

func (e GeometryDegeneracyError) Error() string {
	return fmt.Sprintf("attitude unit vector generation failure, not sufficiently orthogonal at samples %v", e.Indices)
}

// BuildAttitudeFrames constructs the ram-pointing body triad for every
// sample from Earth-fixed position and velocity.
//
// The nadir first guess -r̂ is exact only for a circular orbit, but it is
// close enough to the true z in the orbital plane to derive y, after which z
// is rebuilt from x and y so the triad is right-handed and orthogonal by
// construction. The rebuilt z is then checked against unit norm; any failure
// is fatal.
func BuildAttitudeFrames(posECEF, velECEF [][]float64) (*AttitudeSeries, error) {
	if len(posECEF) != len(velECEF) {
		return nil, fmt.Errorf("position has %d samples, velocity %d", len(posECEF), len(velECEF))
	}
	n := len(posECEF)
	a := &AttitudeSeries{
		XHat: make([][]float64, n),
		YHat: make([][]float64, n),
		ZHat: make([][]float64, n),
	}
	var degenerate []int
	for i := 0; i < n; i++ {
		// Ram pointing is along the velocity vector.
		xHat, err := normalize(velECEF[i], i, "velocity")
		if err != nil {
			return nil, err
		}
		// First-pass nadir.
		z0, err := normalize([]float64{-posECEF[i][0], -posECEF[i][1], -posECEF[i][2]}, i, "position")
		if err != nil {
			return nil, err
		}
		// Z x X = Y, normalized since xHat and z0 need not be orthogonal.
		yHat, err := normalize(Cross(z0, xHat), i, "y-axis")
		if err != nil {
			return nil, err
		}
		// Z = X x Y, consistent with the right-handed system just created.
		zHat := Cross(xHat, yHat)
		if !floats.EqualWithinAbs(Norm(zHat), 1, orthoε) {
			degenerate = append(degenerate, i)
		}
		a.XHat[i] = xHat
		a.YHat[i] = yHat
		a.ZHat[i] = zHat
	}
	if len(degenerate) > 0 {
		return nil, GeometryDegeneracyError{Indices: degenerate}
	}
	return a, nil
}

func normalize(v []float64, i int, quantity string) ([]float64, error) {
	n := Norm(v)
	if n == 0 {
		return nil, ZeroVectorError{Index: i, Quantity: quantity}
	}
	return []float64{v[0] / n, v[1] / n, v[2] / n}, nil
}

// ProjectOntoFrame expresses an Earth-fixed vector field in the body triad:
// each output component is the per-sample dot product of the field with the
// matching frame axis. Purely linear; the only error condition is a sample
// count mismatch.
func ProjectOntoFrame(vecECEF [][]float64, frame *AttitudeSeries) (px, py, pz []float64, err error) {
	if len(vecECEF) != frame.Len() {
		return nil, nil, nil, fmt.Errorf("field has %d samples, frame %d", len(vecECEF), frame.Len())
	}
	n := len(vecECEF)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	for i := 0; i < n; i++ {
		px[i] = Dot(vecECEF[i], frame.XHat[i])
		py[i] = Dot(vecECEF[i], frame.YHat[i])
		pz[i] = Dot(vecECEF[i], frame.ZHat[i])
	}
	return px, py, pz, nil
}
