package finance

import "math"

// Round rounds half up to the nearest integer, matching how the Lite screen
// rounds: Round(-2.5) is -2, not -3. The fraction is compared on its own so
// values just below a half and integers above 2^52 stay exact.
func Round(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return f
}
