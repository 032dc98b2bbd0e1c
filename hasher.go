// hasher.go - public Hasher facade for power consistent hashing
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

import (
	"github.com/opencoff/go-pch/fingerprint"
)

// Hasher maps keys onto a fixed number of buckets using power
// consistent hashing. It is immutable after construction, pure, and
// safe for concurrent use by multiple goroutines without any
// synchronization.
type Hasher struct {
	n             uint32
	mMinusOne     uint32
	mHalfMinusOne uint32
	trace         func(branch string, bucket uint32)
}

// HasherOption configures optional, non-algorithmic behavior of a
// Hasher at construction time. The zero value of Hasher (as built by
// TryNew with no options) never invokes any of this machinery.
type HasherOption func(*Hasher)

// WithTrace installs a callback invoked once per HashUint64 call,
// after the bucket has been determined, naming which of the three
// return branches fired ("fast", "weighted", or "low-half") and the
// resulting bucket. It is the opt-in replacement for the branch-level
// tracing the original implementation always performed; here it costs
// nothing unless installed, and never changes which bucket is chosen.
func WithTrace(fn func(branch string, bucket uint32)) HasherOption {
	return func(h *Hasher) {
		h.trace = fn
	}
}

// TryNew builds a Hasher for n buckets. It fails with
// ErrNotEnoughBuckets when n < 2; every other value of n (up to
// 1<<31) is accepted.
func TryNew(n uint32, opts ...HasherOption) (*Hasher, error) {
	if n < 2 {
		return nil, ErrNotEnoughBuckets
	}

	// smallest power of two >= n; classic bit-smear.
	m := n - 1
	m |= m >> 1
	m |= m >> 2
	m |= m >> 4
	m |= m >> 8
	m |= m >> 16
	mMinusOne := m
	m++

	h := &Hasher{
		n:             n,
		mMinusOne:     mMinusOne,
		mHalfMinusOne: mMinusOne >> 1,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// N returns the number of buckets this Hasher was constructed with.
func (h *Hasher) N() uint32 {
	return h.n
}

// HashUint64 maps key onto a bucket in [0, N()). The mapping is a
// pure function of (N(), key): the same pair always yields the same
// bucket, on every host and every run.
func (h *Hasher) HashUint64(key uint64) uint32 {
	r1, prng, _ := uniformPow2(key, h.mMinusOne)
	if r1 < h.n {
		h.traceBranch("fast", r1)
		return r1
	}

	// r1 >= n >= 2 > 0 implies the low bits of key were non-zero, so
	// uniformPow2 must have produced a generator.
	prng.step()
	r2 := weightedSample(h.n, h.mHalfMinusOne, prng)
	if r2 > h.mHalfMinusOne {
		h.traceBranch("weighted", r2)
		return r2
	}

	r, _, _ := uniformPow2(key, h.mHalfMinusOne)
	h.traceBranch("low-half", r)
	return r
}

func (h *Hasher) traceBranch(branch string, bucket uint32) {
	if h.trace != nil {
		h.trace(branch, bucket)
	}
}

// HashBytes maps an arbitrary byte-string key onto a bucket by first
// fingerprinting it to a uint64 with SeaHash and then routing it
// through HashUint64. The package's u64 reference vectors (the ones
// HashUint64 is checked against) do not depend on this choice; pick a
// different fingerprint with HashBytesWith when SeaHash is not the
// fingerprint wanted.
func (h *Hasher) HashBytes(buf []byte) uint32 {
	return h.HashUint64(fingerprint.SeaHash(buf))
}

// HashBytesWith maps buf onto a bucket using a caller-supplied
// fingerprint function instead of the default SeaHash. The fingerprint
// and the resulting bucket assignment are only as reproducible as fp
// itself.
func (h *Hasher) HashBytesWith(buf []byte, fp fingerprint.Func) uint32 {
	return h.HashUint64(fp(buf))
}
