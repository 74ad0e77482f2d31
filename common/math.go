package common

// Lerp blends from a to b; t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + t*(b-a)
}
