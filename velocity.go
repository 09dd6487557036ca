package missions

import (
	"fmt"
	"math"
)

// FiniteDifferenceVelocity derives an Earth-fixed velocity series from a
// position series using a symmetric difference over the fixed sample spacing
// dt (seconds):
//
//	v[i] = (r[i+1] - r[i-1]) / (2 dt)
//
// The two boundary samples are undefined and marked NaN rather than
// extrapolated. Callers needing valid endpoints should difference a padded
// position series and discard the pad afterwards; padding is the caller's
// concern, not this routine's.
func FiniteDifferenceVelocity(posECEF [][]float64, dt float64) ([][]float64, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("invalid sample spacing %f s", dt)
	}
	n := len(posECEF)
	if n < 3 {
		return nil, fmt.Errorf("need at least 3 samples for a symmetric difference, got %d", n)
	}
	vel := make([][]float64, n)
	nan := math.NaN()
	vel[0] = []float64{nan, nan, nan}
	vel[n-1] = []float64{nan, nan, nan}
	for i := 1; i < n-1; i++ {
		vel[i] = []float64{
			(posECEF[i+1][0] - posECEF[i-1][0]) / (2 * dt),
			(posECEF[i+1][1] - posECEF[i-1][1]) / (2 * dt),
			(posECEF[i+1][2] - posECEF[i-1][2]) / (2 * dt),
		}
	}
	return vel, nil
}
