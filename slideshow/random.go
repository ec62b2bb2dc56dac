package slideshow

import "math/rand/v2"

// RandomSource draws uniformly from [0, n).
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRandom uses the process wide generator of math/rand/v2 and is safe
// for concurrent use.
var DefaultRandom RandomSource = globalRandom{}
