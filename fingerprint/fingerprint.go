// fingerprint.go - byte-key to uint64 fingerprints for pch.Hasher.HashBytes
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

// Package fingerprint collects the byte-oriented hash functions that
// pch.Hasher delegates to when hashing variable-width keys. None of
// these are part of the core power-consistent-hashing algorithm;
// pch.Hasher.HashUint64 never calls into this package on its own, and
// a caller who only ever hashes uint64 keys need not import it.
//
// SeaHash is the default and the one the package's byte-key reference
// vectors are generated against. SipHash and FastHash are documented
// alternatives for callers who want a keyed (adversarial-input
// resistant) or an unkeyed, higher-throughput fingerprint instead.
package fingerprint

// Func is a byte-string to uint64 fingerprint. It is the shape
// pch.Hasher.HashBytesWith expects.
type Func func(buf []byte) uint64
