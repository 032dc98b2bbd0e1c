// siphash.go - keyed SipHash fingerprint
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
	"github.com/dchest/siphash"
)

// SipHasher returns a Func that fingerprints with SipHash-2-4 keyed by
// (k0, k1). Unlike SeaHash or FastHash, SipHash is a MAC: without the
// key, an adversary supplying keys cannot engineer collisions that
// concentrate load onto one bucket, which matters when bucket
// assignment is driven by externally-supplied keys (e.g. request
// routing by client-chosen identifiers).
//
// This mirrors how go-mph's own DBReader/DBWriter use
// github.com/dchest/siphash for record-integrity checksums, keyed by
// a per-database salt instead of a well-known constant.
func SipHasher(k0, k1 uint64) Func {
	return func(buf []byte) uint64 {
		return siphash.Hash(k0, k1, buf)
	}
}
