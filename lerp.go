package morph

import "math"

// Lerp linearly interpolates between a and b. Values of t outside [0, 1]
// extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AngleLerp interpolates between two angles in degrees along the shortest
// circular arc, so 350°→10° passes through 0° rather than 180°. NaN inputs
// are treated as 0.
func AngleLerp(start, end, t float64) float64 {
	if math.IsNaN(start) {
		start = 0
	}
	if math.IsNaN(end) {
		end = 0
	}
	start = math.Mod(math.Mod(start, 360)+360, 360)
	end = math.Mod(math.Mod(end, 360)+360, 360)

	diff := end - start
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	return start + diff*t
}

// Step switches from a to b at t = 0.5, with no blending. Used for values
// that cannot be interpolated continuously.
func Step[T any](a, b T, t float64) T {
	if t < 0.5 {
		return a
	}
	return b
}

// angleDistance returns the shortest angular distance between two angles in
// radians; the result is in [0, π].
func angleDistance(a1, a2 float64) float64 {
	diff := math.Mod(a2-a1, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}
