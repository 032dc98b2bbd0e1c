// fasthash.go - unkeyed FastHash fingerprint
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

package fingerprint

import (
	"github.com/opencoff/go-fasthash"
)

// FastHasher returns a Func that fingerprints with Zi Long Tan's
// superfast hash (via go-fasthash), seeded by seed. It is unkeyed and
// not collision-resistant against an adversary who controls the
// input, but it is cheaper than SipHash - the right tradeoff for
// trusted, high-throughput inputs such as internally generated keys.
//
// This is exactly how go-mph's own test suite and example/text.go use
// the same dependency: fasthash.Hash64(seed, buf).
func FastHasher(seed uint64) Func {
	return func(buf []byte) uint64 {
		return fasthash.Hash64(seed, buf)
	}
}
