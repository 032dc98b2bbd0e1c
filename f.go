// f.go - power-of-two uniform map
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

// uniformPow2 maps key into [0, mMinusOne+1), where mMinusOne+1 must
// be a power of two. It returns the mapped value r and, except on the
// fast path below, the pcg32 stream it drew from - the caller may
// hand that generator on to g for a further, independent draw.
//
// The second return value is only valid when ok is true. The fast
// path (low bits of key are all zero) deliberately never constructs a
// pcg32: callers must not assume a generator is always produced.
func uniformPow2(key uint64, mMinusOne uint32) (r uint32, prng pcg32, ok bool) {
	low := uint32(key & uint64(mMinusOne))
	if low == 0 {
		return 0, pcg32{}, false
	}

	stream := msb(low)
	prng = newPCG32(key, uint64(stream))

	h := uint32(1) << stream
	draw := prng.next32() & (h - 1)
	r = h + draw
	return r, prng, true
}
