package simulation

import "math"

// Guard evaluates fn and collapses any failure to zero: a panic, NaN or an
// infinity all yield 0. Every formula in this package goes through Guard so
// that one bad figure never blanks its siblings.
func Guard(fn func() float64) (v float64) {
	defer func() {
		if r := recover(); r != nil {
			v = 0
		}
	}()

	v = fn()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
