package missions

import (
	"fmt"
	"math"
	"time"
)

// KeplerianFromAltitudes computes the orbital eccentricity and mean motion
// from the periapsis and apoapsis altitudes, in km above the mean surface of
// the body. The mean motion is returned in rad/min, which is what simplified
// perturbation propagators expect.
func KeplerianFromAltitudes(altPeriapsis, altApoapsis float64, body string) (eccentricity, meanMotion float64, err error) {
	c, err := CelestialObjectFromString(body)
	if err != nil {
		return 0, 0, err
	}
	radApoapsis := altApoapsis + c.Radius
	radPeriapsis := altPeriapsis + c.Radius
	semimajor := 0.5 * (radApoapsis + radPeriapsis)

	eccentricity = (radApoapsis - radPeriapsis) / (radApoapsis + radPeriapsis)
	// Semi-major axis to meters, mean motion to rad/min.
	meanMotion = math.Sqrt(c.GM()/math.Pow(1e3*semimajor, 3)) * 60
	return
}

// KeplerianFromAltitude is the circular-orbit special case of
// KeplerianFromAltitudes: apoapsis equals periapsis and the eccentricity is
// exactly zero.
func KeplerianFromAltitude(altitude float64, body string) (eccentricity, meanMotion float64, err error) {
	return KeplerianFromAltitudes(altitude, altitude, body)
}

// AltitudesFromKeplerian inverts KeplerianFromAltitudes: given the
// eccentricity and mean motion (rad/min), it recovers the periapsis and
// apoapsis altitudes in km. Both functions are exact inverses of one another
// to within floating point round-trip tolerance.
func AltitudesFromKeplerian(eccentricity, meanMotion float64, body string) (altPeriapsis, altApoapsis float64, err error) {
	c, err := CelestialObjectFromString(body)
	if err != nil {
		return 0, 0, err
	}
	// Mean motion back to rad/s, semi-major axis in meters, then km.
	semimajor := math.Cbrt(c.GM()/math.Pow(meanMotion/60, 2)) / 1e3

	radApoapsis := semimajor * (1 + eccentricity)
	radPeriapsis := semimajor * (1 - eccentricity)
	altApoapsis = radApoapsis - c.Radius
	altPeriapsis = radPeriapsis - c.Radius
	return
}

// PeriodFromMeanMotion returns the orbital period for a mean motion in rad/min.
func PeriodFromMeanMotion(meanMotion float64) time.Duration {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	seconds := (2 * math.Pi / meanMotion) * 60
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}
