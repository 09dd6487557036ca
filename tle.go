package missions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const tleLineLength = 69

// ValidateTLELines performs basic format validation on a TLE pair before it
// is handed to the propagator library, which is not graceful about garbage.
func ValidateTLELines(line1, line2 string) error {
	if len(line1) != tleLineLength {
		return fmt.Errorf("TLE line1 length %d, expected %d", len(line1), tleLineLength)
	}
	if len(line2) != tleLineLength {
		return fmt.Errorf("TLE line2 length %d, expected %d", len(line2), tleLineLength)
	}
	if line1[0] != '1' {
		return fmt.Errorf("TLE line1 must start with '1', got '%c'", line1[0])
	}
	if line2[0] != '2' {
		return fmt.Errorf("TLE line2 must start with '2', got '%c'", line2[0])
	}
	return nil
}

// FormatTLE encodes a resolved Keplerian element set as a well-formed
// two-line-element pair, so that a Keplerian-only orbit specification can
// drive a TLE-based propagator. The first derivative of mean motion and the
// second derivative term are written as zero: the synthetic orbit carries no
// observed decay history, only the bstar drag term.
func FormatTLE(el Elements, satnum int) (line1, line2 string) {
	epoch := el.Epoch.UTC()
	yy := epoch.Year() % 100
	secOfDay := float64(epoch.Hour()*3600+epoch.Minute()*60+epoch.Second()) +
		float64(epoch.Nanosecond())/1e9
	doy := float64(epoch.YearDay()) + secOfDay/86400

	revPerDay := el.MeanMotion * 1440 / (2 * math.Pi)

	l1 := fmt.Sprintf("1 %05dU %-8s %02d%012.8f %10s %8s %8s 0 %4d",
		satnum, "00000A", yy, doy, ".00000000", "00000-0", tleExpFormat(el.Bstar), 999)
	l2 := fmt.Sprintf("2 %05d %8.4f %8.4f %07d %8.4f %8.4f %11.8f%5d",
		satnum,
		wrap360(el.Inclination),
		wrap360(el.RAAN),
		int(math.Round(el.Eccentricity*1e7)),
		wrap360(el.ArgPeriapsis),
		wrap360(el.MeanAnomaly),
		revPerDay, 1)

	line1 = l1 + fmt.Sprintf("%d", tleChecksum(l1))
	line2 = l2 + fmt.Sprintf("%d", tleChecksum(l2))
	return
}

// tleExpFormat writes a value in the 8-column TLE exponent notation
// ±NNNNN±E, meaning ±0.NNNNN x 10^±E.
func tleExpFormat(v float64) string {
	if v == 0 {
		return " 00000+0"
	}
	sign := " "
	if v < 0 {
		sign = "-"
		v = -v
	}
	exp := int(math.Floor(math.Log10(v))) + 1
	digits := int(math.Round(v / math.Pow(10, float64(exp)) * 1e5))
	if digits == 100000 {
		// The mantissa rounded up to 1.0.
		digits = 10000
		exp++
	}
	expSign := "+"
	if exp < 0 {
		expSign = "-"
		exp = -exp
	}
	return fmt.Sprintf("%s%05d%s%d", sign, digits, expSign, exp)
}

// tleChecksum computes the modulo-10 TLE line checksum: digits count as
// their value, minus signs count as one.
func tleChecksum(line string) int {
	sum := 0
	for _, c := range line {
		switch {
		case c >= '0' && c <= '9':
			sum += int(c - '0')
		case c == '-':
			sum++
		}
	}
	return sum % 10
}

// MeanMotionFromTLE extracts the mean motion from the second TLE line and
// returns it in rad/min.
func MeanMotionFromTLE(line2 string) (float64, error) {
	if len(line2) != tleLineLength || line2[0] != '2' {
		return 0, fmt.Errorf("malformed TLE line2")
	}
	revPerDay, err := strconv.ParseFloat(strings.TrimSpace(line2[52:63]), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed TLE mean motion field: %w", err)
	}
	return revPerDay * 2 * math.Pi / 1440, nil
}

// MeanMotion resolves the spec's mean motion in rad/min, honoring the same
// Keplerian-over-TLE precedence as the propagator construction.
func (s OrbitSpec) MeanMotion(body string) (float64, error) {
	if _, err := ValidateOrbitSpec(s); err != nil {
		return 0, err
	}
	if s.AltPeriapsis != nil {
		el, err := s.Keplerian(body)
		if err != nil {
			return 0, err
		}
		return el.MeanMotion, nil
	}
	return MeanMotionFromTLE(s.TLE2)
}

func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
