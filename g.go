// g.go - weighted discrete sampler
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package pch

// weightedSample samples the largest index j in [s, n) reached by a
// process that starts at x = s and repeatedly jumps to the next j > x
// with probability (x+1)/(j+1), the jump-ahead trick behind weighted
// consistent hashing. It is transformed into integer arithmetic to
// avoid floating point, operating on a local copy of prng so the
// caller's generator is left untouched.
//
// Precondition: s < n.
func weightedSample(n, s uint32, prng pcg32) uint32 {
	x := s
	n64 := uint64(n)

	for {
		scaledX := (uint64(x) + 1) * uint64(^uint32(0))
		r := uint64(prng.next32()) + 1

		if n64*r <= scaledX {
			break
		}

		prng.step()
		x = uint32(scaledX / r)
		debugAssert(uint64(x) < n64, "weightedSample: x must stay below n")
	}
	return x
}
