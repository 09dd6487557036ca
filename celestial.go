package missions

import (
	"fmt"
	"strings"
)

// G is Newton's gravitational constant in m^3 / (kg s^2), shared by all bodies.
const G = 6.6743e-11

// CelestialObject defines the physical constants of a central body.
// Radius is the mean radius to the surface in km, Mass in kg.
type CelestialObject struct {
	Name   string
	Radius float64
	Mass   float64
}

// GM returns μ in m^3/s^2.
func (c CelestialObject) GM() float64 {
	return G * c.Mass
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.Mass == b.Mass
}

// CelestialObjectFromString returns the object from its name.
// Only Earth is defined for now; an unknown body is an error, never a
// silent default.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "earth":
		return Earth, nil
	default:
		return CelestialObject{}, UnsupportedBodyError{name}
	}
}

// UnsupportedBodyError is returned when a body name is absent from the
// constants table.
type UnsupportedBodyError struct {
	Name string
}

func (e UnsupportedBodyError) Error() string {
	return fmt.Sprintf("'%s' is not yet a supported body", e.Name)
}

/* Definitions */

// Earth is home.
var Earth = CelestialObject{"Earth", 6371.2, 5.9722e24}
