package missions

import (
	"errors"
	"testing"
	"time"
)

// ISS elements, the library-wide test fixture.
const (
	issTLE1 = "1 25544U 98067A   18135.61844383  .00002728  00000-0  48567-4 0  9998"
	issTLE2 = "2 25544  51.6402 181.0633 0004018  88.8954  22.2246 15.54059185113452"
)

func TestValidateIncompleteKeplerian(t *testing.T) {
	_, err := ValidateOrbitSpec(OrbitSpec{Inclination: Float64(51.6)})
	var specErr OrbitSpecificationError
	if !errors.As(err, &specErr) {
		t.Fatalf("expected OrbitSpecificationError, got %v", err)
	}
	if specErr.Group != "keplerian" {
		t.Fatalf("wrong group reported: %s", specErr.Group)
	}
}

func TestValidateIncompleteTLE(t *testing.T) {
	_, err := ValidateOrbitSpec(OrbitSpec{TLE1: issTLE1})
	var specErr OrbitSpecificationError
	if !errors.As(err, &specErr) {
		t.Fatalf("expected OrbitSpecificationError, got %v", err)
	}
	if specErr.Group != "tle" {
		t.Fatalf("wrong group reported: %s", specErr.Group)
	}
}

func TestValidateEmpty(t *testing.T) {
	if _, err := ValidateOrbitSpec(OrbitSpec{}); err == nil {
		t.Fatal("empty spec should not validate")
	}
}

func TestValidateComplete(t *testing.T) {
	warning, err := ValidateOrbitSpec(OrbitSpec{AltPeriapsis: Float64(400), Inclination: Float64(51.6)})
	if err != nil {
		t.Fatal(err)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %s", warning)
	}
	warning, err = ValidateOrbitSpec(OrbitSpec{TLE1: issTLE1, TLE2: issTLE2})
	if err != nil {
		t.Fatal(err)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %s", warning)
	}
}

func TestValidateBothGroups(t *testing.T) {
	both := OrbitSpec{
		TLE1:         issTLE1,
		TLE2:         issTLE2,
		AltPeriapsis: Float64(400),
		AltApoapsis:  Float64(850),
		Inclination:  Float64(51.6),
	}
	warning, err := ValidateOrbitSpec(both)
	if err != nil {
		t.Fatal(err)
	}
	if warning != BothGroupsWarning {
		t.Fatalf("expected the both-groups warning, got %q", warning)
	}
	// Keplerian precedence: the resolved mean motion must be the one derived
	// from the altitudes, not the one encoded in the TLE.
	nBoth, err := both.MeanMotion("Earth")
	if err != nil {
		t.Fatal(err)
	}
	kepOnly := both
	kepOnly.TLE1, kepOnly.TLE2 = "", ""
	nKep, err := kepOnly.MeanMotion("Earth")
	if err != nil {
		t.Fatal(err)
	}
	if nBoth != nKep {
		t.Fatalf("Keplerians did not take precedence: %f vs %f", nBoth, nKep)
	}
}

func TestKeplerianResolutionDefaults(t *testing.T) {
	spec := OrbitSpec{AltPeriapsis: Float64(400), Inclination: Float64(51.6)}
	el, err := spec.Keplerian("Earth")
	if err != nil {
		t.Fatal(err)
	}
	if el.Eccentricity != 0 {
		t.Fatalf("omitted apoapsis should yield a circular orbit, got e=%g", el.Eccentricity)
	}
	if el.RAAN != 0 || el.ArgPeriapsis != 0 || el.MeanAnomaly != 0 || el.Bstar != 0 {
		t.Fatalf("optional elements should default to zero: %+v", el)
	}
	if !el.Epoch.Equal(DefaultEpoch) {
		t.Fatalf("expected the default epoch, got %s", el.Epoch)
	}

	spec.Epoch = time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	spec.AltApoapsis = Float64(850)
	spec.RAAN = Float64(120)
	el, err = spec.Keplerian("Earth")
	if err != nil {
		t.Fatal(err)
	}
	if el.Eccentricity == 0 || el.RAAN != 120 || !el.Epoch.Equal(spec.Epoch) {
		t.Fatalf("supplied elements not honored: %+v", el)
	}
}
