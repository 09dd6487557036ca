package missions

import (
	"math"
)

// FieldModel supplies an Earth-fixed vector field sampled along a
// trajectory, typically to be projected onto the spacecraft body triad.
type FieldModel interface {
	Name() string
	Units() string
	Evaluate(s *StateSeries) ([][]float64, error)
}

// LookupFieldModel is an explicit capability check: it returns the named
// builtin model, or ok=false when no such capability exists. Unknown names
// are not an error to be intercepted at evaluation time; the integration
// decides up front what it can compute.
func LookupFieldModel(name string) (FieldModel, bool) {
	switch name {
	case "corotation_wind":
		return CorotationWind{}, true
	case "dipole_b":
		return DipoleField{}, true
	default:
		return nil, false
	}
}

// CorotationWind is the neutral wind of an atmosphere rigidly corotating
// with the planet: u = ω x r, in km/s in ECEF.
type CorotationWind struct{}

// Name implements FieldModel.
func (CorotationWind) Name() string { return "corotation_wind" }

// Units implements FieldModel.
func (CorotationWind) Units() string { return "km/s" }

// Evaluate implements FieldModel.
func (CorotationWind) Evaluate(s *StateSeries) ([][]float64, error) {
	ω := []float64{0, 0, EarthRotationRate}
	out := make([][]float64, s.Len())
	for i := range out {
		out[i] = Cross(ω, s.PosECEF[i])
	}
	return out, nil
}

// DipoleField is a centered, axis-aligned dipole approximation of the
// geomagnetic field, in nT in ECEF. The dipole moment points toward the
// geographic south pole, so the field points north at the equator.
type DipoleField struct{}

// b0 is the mean equatorial surface field strength in nT.
const b0 = 3.12e4

// Name implements FieldModel.
func (DipoleField) Name() string { return "dipole_b" }

// Units implements FieldModel.
func (DipoleField) Units() string { return "nT" }

// Evaluate implements FieldModel.
func (DipoleField) Evaluate(s *StateSeries) ([][]float64, error) {
	m := []float64{0, 0, -1}
	out := make([][]float64, s.Len())
	for i := range out {
		r := Norm(s.PosECEF[i])
		if r == 0 {
			return nil, ZeroVectorError{Index: i, Quantity: "position"}
		}
		rHat := Unit(s.PosECEF[i])
		scale := b0 * math.Pow(Earth.Radius/r, 3)
		mDotR := Dot(m, rHat)
		out[i] = []float64{
			scale * (3*mDotR*rHat[0] - m[0]),
			scale * (3*mDotR*rHat[1] - m[1]),
			scale * (3*mDotR*rHat[2] - m[2]),
		}
	}
	return out, nil
}
