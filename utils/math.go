package utils

// Fl is the float type used for every CSS number.
type Fl = float64

// Clamp returns v restricted to [low, high].
func Clamp(v, low, high Fl) Fl {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
