package missions

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// Station defines a ground station against which per-sample visibility of a
// trajectory is evaluated.
type Station struct {
	Name                       string
	R, V                       []float64 // position and velocity in ECEF, km and km/s
	LatΦ, Longθ                float64   // these are stored in radians!
	Altitude, Elevation        float64   // station altitude (km) and elevation mask (degrees)
	RangeNoise, RangeRateNoise *distmv.Normal
}

// NewStation returns a new station without measurement noise. Angles in degrees.
func NewStation(name string, altitude, elevation, latΦ, longθ float64) Station {
	R := GEO2ECEF(altitude, latΦ*deg2rad, longθ*deg2rad)
	V := Cross([]float64{0, 0, EarthRotationRate}, R)
	return Station{name, R, V, latΦ * deg2rad, longθ * deg2rad, altitude, elevation, nil, nil}
}

// NewNoisyStation returns a new station whose range and range-rate
// observations carry zero-mean Gaussian noise of the provided variances.
func NewNoisyStation(name string, altitude, elevation, latΦ, longθ, σρ, σρDot float64) Station {
	s := NewStation(name, altitude, elevation, latΦ, longθ)
	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	ρNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{σρ}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	ρDotNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{σρDot}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	s.RangeNoise = ρNoise
	s.RangeRateNoise = ρDotNoise
	return s
}

// RangeElAz returns the range (in the SEZ frame), elevation and azimuth (in
// degrees) of a given R vector in ECEF.
func (s Station) RangeElAz(rECEF []float64) (ρECEF []float64, ρ, el, az float64) {
	ρECEF = make([]float64, 3)
	for i := 0; i < 3; i++ {
		ρECEF[i] = rECEF[i] - s.R[i]
	}
	ρ = Norm(ρECEF)
	rSEZ := MxV33(R3(s.Longθ), ρECEF)
	rSEZ = MxV33(R2(math.Pi/2-s.LatΦ), rSEZ)
	el = math.Asin(rSEZ[2]/ρ) * rad2deg
	az = math.Mod((2*math.Pi+math.Atan2(rSEZ[1], -rSEZ[0]))*rad2deg, 360)
	return
}

// Visibility is one station observation of one trajectory sample.
type Visibility struct {
	Visible                  bool
	Range, RangeRate         float64 // reported observation, noisy when the station carries noise
	TrueRange, TrueRangeRate float64
	Azimuth, Elevation       float64 // degrees
}

// Observe evaluates visibility of every sample of the series from this
// station. Range rate is the line-of-sight component of the relative
// velocity between spacecraft and station.
func (s Station) Observe(series *StateSeries) []Visibility {
	out := make([]Visibility, series.Len())
	for i := range out {
		ρECEF, ρ, el, az := s.RangeElAz(series.PosECEF[i])
		vDiff := make([]float64, 3)
		for j := 0; j < 3; j++ {
			vDiff[j] = (series.VelECEF[i][j] - s.V[j]) / ρ
		}
		ρDot := Dot(ρECEF, vDiff)
		obs := Visibility{
			Visible:       el >= s.Elevation,
			Range:         ρ,
			RangeRate:     ρDot,
			TrueRange:     ρ,
			TrueRangeRate: ρDot,
			Azimuth:       az,
			Elevation:     el,
		}
		if s.RangeNoise != nil {
			obs.Range += s.RangeNoise.Rand(nil)[0]
		}
		if s.RangeRateNoise != nil {
			obs.RangeRate += s.RangeRateNoise.Rand(nil)[0]
		}
		out[i] = obs
	}
	return out
}

func (s Station) String() string {
	return fmt.Sprintf("%s (%f,%f); alt = %f km; el = %f deg", s.Name, s.LatΦ*rad2deg, s.Longθ*rad2deg, s.Altitude, s.Elevation)
}
