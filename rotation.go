package missions

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

const (
	// EarthRotationRate is the average Earth rotation rate in radians per second.
	EarthRotationRate = 7.2921158553e-5
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// ECI2ECEF converts the provided ECI vector to ECEF for the θgst given in radians.
func ECI2ECEF(R []float64, θgst float64) []float64 {
	return MxV33(R3(θgst), R)
}

// ECEF2ECI converts the provided ECEF vector to ECI for the θgst given in radians.
func ECEF2ECI(R []float64, θgst float64) []float64 {
	return ECI2ECEF(R, -θgst)
}

// ECIVel2ECEF converts an ECI velocity to ECEF given the matching ECEF position.
// The rotation of the frame itself has to be removed: v_ecef = R3(θ)v - ω × r_ecef.
func ECIVel2ECEF(V, RECEF []float64, θgst float64) []float64 {
	v := ECI2ECEF(V, θgst)
	ω := []float64{0, 0, EarthRotationRate}
	ωxr := Cross(ω, RECEF)
	return []float64{v[0] - ωxr[0], v[1] - ωxr[1], v[2] - ωxr[2]}
}

// GEO2ECEF converts the provided parameters (in km and radians) to the ECEF vector.
// Note that the first parameter is the altitude, not the radius from the center of the body!
func GEO2ECEF(altitude, latitude, longitude float64) []float64 {
	sLong, cLong := math.Sincos(longitude)
	sLat, cLat := math.Sincos(latitude)
	r := altitude + Earth.Radius
	return []float64{r * cLat * cLong, r * cLat * sLong, r * sLat}
}

// WGS-84 ellipsoid parameters, in meters.
const (
	wgs84A  = 6378137.0
	wgs84F  = 1.0 / 298.257223563
	wgs84E2 = wgs84F * (2 - wgs84F)
)

// ECEF2Geodetic converts an ECEF position in *meters* to geodetic latitude
// and longitude (degrees) and height above the WGS-84 ellipsoid (meters),
// using the iterative Bowring method. Converges in 2-3 iterations for Earth
// orbits. Callers working in kilometers convert at this boundary.
func ECEF2Geodetic(R []float64) (latDeg, lonDeg, altM float64) {
	x, y, z := R[0], R[1], R[2]
	lon := math.Atan2(y, x)
	p := math.Sqrt(x*x + y*y)

	lat := math.Atan2(z, p*(1-wgs84E2))
	for i := 0; i < 5; i++ {
		sinLat := math.Sin(lat)
		N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)
		lat = math.Atan2(z+wgs84E2*N*sinLat, p)
	}

	sinLat, cosLat := math.Sincos(lat)
	N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)
	if math.Abs(cosLat) > 1e-10 {
		altM = p/cosLat - N
	} else {
		altM = math.Abs(z)/math.Abs(sinLat) - N*(1-wgs84E2)
	}
	return lat * rad2deg, lon * rad2deg, altM
}
