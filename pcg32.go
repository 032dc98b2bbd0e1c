// pcg32.go - PCG XSH-RR 64/32 pseudo-random generator
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

import "math/bits"

// pcgMultiplier is the default 64-bit LCG multiplier used by the
// standard pcg32 generator family.
const pcgMultiplier uint64 = 6364136223846793005

// pcg32 is a PCG (Permuted Congruential Generator) with a 64-bit LCG
// state and a 32-bit output obtained via "xorshift high, random
// rotate" (XSH-RR). It is bit-for-bit compatible with the reference
// pcg32, which callers rely on for reproducible bucket assignment.
//
// A pcg32 is seeded entirely from its constructor arguments - there
// is no global state and no time-based seeding. Copying a pcg32
// copies its state; each copy evolves independently once stepped.
type pcg32 struct {
	state     uint64
	increment uint64
}

// newPCG32 constructs a pcg32 compatible with the standard pcg32 seed
// and stream parameters. The increment is stream shifted left by one
// with the low bit set, so it is always odd; the top bit of stream is
// discarded by the shift.
func newPCG32(seed, stream uint64) pcg32 {
	p := pcg32{
		increment: (stream << 1) | 1,
	}
	p.state = seed + p.increment
	p.step()
	return p
}

// step advances the underlying LCG by one round.
func (p *pcg32) step() {
	p.state = p.state*pcgMultiplier + p.increment
}

// next32 returns the permuted output for the *current* state without
// advancing it. Callers that need independent successive draws must
// call step between calls to next32 - this split is deliberate: it
// lets a caller take one draw from a generator and then hand it to
// another function that must see a fresh draw of its own.
func (p *pcg32) next32() uint32 {
	const (
		rotate = 59 // 64 - 5
		xshift = 18 // (5 + 32) / 2
		spare  = 27 // 64 - 32 - 5
	)

	state := p.state
	rot := uint32(state >> rotate)
	xsh := uint32(((state >> xshift) ^ state) >> spare)
	return bits.RotateLeft32(xsh, -int(rot))
}
