package missions

import (
	"fmt"
	"strings"
	"time"
)

// OrbitSpec collects the caller-supplied orbit-defining parameters. Two
// groups are recognized: a fixed-format two-line-element pair, and a
// Keplerian set anchored on the periapsis altitude and inclination. Optional
// numeric members are pointers so that "absent" and "zero" stay
// distinguishable; use Float64 to build them in place.
type OrbitSpec struct {
	TLE1 string
	TLE2 string

	AltPeriapsis *float64 // km above the mean surface
	AltApoapsis  *float64 // km, defaults to AltPeriapsis (circular orbit)
	Inclination  *float64 // degrees
	RAAN         *float64 // degrees, defaults to 0
	ArgPeriapsis *float64 // degrees, defaults to 0
	MeanAnomaly  *float64 // degrees, defaults to 0
	Bstar        *float64 // drag term, inverse Earth radii, defaults to 0

	// Epoch anchors the Keplerian set. Zero means DefaultEpoch.
	Epoch time.Time
}

// DefaultEpoch is used when a Keplerian set is supplied without an epoch.
var DefaultEpoch = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

// Float64 returns a pointer to v, for filling optional OrbitSpec members.
func Float64(v float64) *float64 {
	return &v
}

// BothGroupsWarning is emitted when a complete TLE pair and a complete
// Keplerian set are both supplied. Processing continues with the Keplerians.
const BothGroupsWarning = "cannot use both Keplerians and TLEs, defaulting to Keplerians"

// OrbitSpecificationError reports an incomplete orbit parameter group.
type OrbitSpecificationError struct {
	Group    string
	Required []string
}

func (e OrbitSpecificationError) Error() string {
	return fmt.Sprintf("insufficient orbit parameters: group %s requires %s", e.Group, strings.Join(e.Required, ", "))
}

// ValidateOrbitSpec checks that the spec carries a complete, unambiguous set
// of orbit-defining parameters. For each group, if any required member is
// present then all of them must be. When both groups are complete, the
// returned warning is non-empty and the Keplerian group takes precedence
// downstream; this is deliberately not an error.
func ValidateOrbitSpec(s OrbitSpec) (warning string, err error) {
	tleSet := []bool{s.TLE1 != "", s.TLE2 != ""}
	kepSet := []bool{s.AltPeriapsis != nil, s.Inclination != nil}

	if anyOf(tleSet) && !allOf(tleSet) {
		return "", OrbitSpecificationError{"tle", []string{"tle1", "tle2"}}
	}
	if anyOf(kepSet) && !allOf(kepSet) {
		return "", OrbitSpecificationError{"keplerian", []string{"alt_periapsis", "inclination"}}
	}
	if !allOf(tleSet) && !allOf(kepSet) {
		return "", OrbitSpecificationError{"orbit", []string{"tle1, tle2", "alt_periapsis, inclination"}}
	}
	if allOf(tleSet) && allOf(kepSet) {
		warning = BothGroupsWarning
	}
	return warning, nil
}

func anyOf(bools []bool) bool {
	for _, b := range bools {
		if b {
			return true
		}
	}
	return false
}

func allOf(bools []bool) bool {
	for _, b := range bools {
		if !b {
			return false
		}
	}
	return true
}

// Elements is a fully resolved Keplerian element set for a propagator.
type Elements struct {
	Eccentricity float64
	MeanMotion   float64 // rad/min
	Inclination  float64 // degrees
	RAAN         float64 // degrees
	ArgPeriapsis float64 // degrees
	MeanAnomaly  float64 // degrees
	Bstar        float64 // inverse Earth radii
	Epoch        time.Time
}

// Keplerian resolves the spec into a concrete element set for the given
// body, applying the documented defaults (apoapsis equals periapsis, all
// remaining optionals zero). The spec must carry a complete Keplerian group.
func (s OrbitSpec) Keplerian(body string) (Elements, error) {
	if s.AltPeriapsis == nil || s.Inclination == nil {
		return Elements{}, OrbitSpecificationError{"keplerian", []string{"alt_periapsis", "inclination"}}
	}
	altPeriapsis := *s.AltPeriapsis
	altApoapsis := altPeriapsis
	if s.AltApoapsis != nil {
		altApoapsis = *s.AltApoapsis
	}
	ecc, meanMotion, err := KeplerianFromAltitudes(altPeriapsis, altApoapsis, body)
	if err != nil {
		return Elements{}, err
	}
	el := Elements{
		Eccentricity: ecc,
		MeanMotion:   meanMotion,
		Inclination:  *s.Inclination,
		Epoch:        s.Epoch,
	}
	if s.RAAN != nil {
		el.RAAN = *s.RAAN
	}
	if s.ArgPeriapsis != nil {
		el.ArgPeriapsis = *s.ArgPeriapsis
	}
	if s.MeanAnomaly != nil {
		el.MeanAnomaly = *s.MeanAnomaly
	}
	if s.Bstar != nil {
		el.Bstar = *s.Bstar
	}
	if el.Epoch.IsZero() {
		el.Epoch = DefaultEpoch
	}
	return el, nil
}
