// hasher_test.go - test suite for the Hasher facade
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
	"testing"

	"github.com/opencoff/go-pch/fingerprint"
)

func TestTryNewRejectsTooFewBuckets(t *testing.T) {
	assert := newAsserter(t)

	for _, n := range []uint32{0, 1} {
		_, err := TryNew(n)
		assert(err == ErrNotEnoughBuckets, "TryNew(%d) err = %v; want ErrNotEnoughBuckets", n, err)
	}

	for _, n := range []uint32{2, 3, 96, 1024} {
		_, err := TryNew(n)
		assert(err == nil, "TryNew(%d) err = %v; want nil", n, err)
	}
}

// TestReferenceVectors checks the u64-key vectors that MUST match
// bit-for-bit: the core algorithm pinned down by the PRNG, f and g
// semantics.
func TestReferenceVectors(t *testing.T) {
	assert := newAsserter(t)

	h, err := TryNew(96)
	assert(err == nil, "TryNew(96): %v", err)

	vectors := []struct {
		key    uint64
		bucket uint32
	}{
		{0, 0},
		{8, 12},
		{9, 12},
		{10, 13},
		{11, 15},
		{12, 11},
		{999, 89},
	}

	for _, v := range vectors {
		got := h.HashUint64(v.key)
		assert(got == v.bucket, "HashUint64(%d) = %d; want %d", v.key, got, v.bucket)
	}
}

func TestHashUint64RepeatedCallsAreDeterministic(t *testing.T) {
	assert := newAsserter(t)

	h, err := TryNew(96)
	assert(err == nil, "TryNew(96): %v", err)

	first := h.HashUint64(10)
	second := h.HashUint64(10)
	assert(first == 13, "first call = %d; want 13", first)
	assert(second == 13, "second call = %d; want 13", second)
}

func TestHashUint64AlwaysInRange(t *testing.T) {
	assert := newAsserter(t)

	for _, n := range []uint32{2, 3, 5, 6, 7, 17, 96, 97, 1000, 1 << 20} {
		h, err := TryNew(n)
		assert(err == nil, "TryNew(%d): %v", n, err)

		for key := uint64(0); key < 2000; key++ {
			b := h.HashUint64(key * 2654435761)
			assert(b < n, "n=%d key=%d: bucket %d out of range", n, key, b)
		}
	}
}

// TestBalance is the §8 property-6 statistical check: with n=96 and a
// million well-distributed keys, the gap between the fullest and the
// emptiest bucket must stay below 0.1% of all keys hashed.
func TestBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large balance check in -short mode")
	}
	assert := newAsserter(t)

	const n = 96
	const totalKeys = 1_000_000

	h, err := TryNew(n)
	assert(err == nil, "TryNew(%d): %v", n, err)

	counts := make([]int, n)
	for i := uint64(0); i < totalKeys; i++ {
		b := h.HashUint64(i * 0x9e3779b97f4a7c15)
		counts[b]++
	}

	min, max := counts[0], counts[0]
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}

	spread := float64(max-min) / float64(totalKeys)
	assert(spread < 0.001, "bucket spread %.5f exceeds 0.001 (min=%d, max=%d)", spread, min, max)
}

// TestConsistencyUnderRescale is the §8 property-7 check: moving from
// n to n+1 buckets should relocate close to 1/(n+1) of keys.
func TestConsistencyUnderRescale(t *testing.T) {
	assert := newAsserter(t)

	const n = 5
	const keys = 100

	h1, err := TryNew(n)
	assert(err == nil, "TryNew(%d): %v", n, err)
	h2, err := TryNew(n + 1)
	assert(err == nil, "TryNew(%d): %v", n+1, err)

	moved := 0
	for i := uint64(0); i < keys; i++ {
		key := i * 0x2545f4914f6cdd1d
		if h1.HashUint64(key) != h2.HashUint64(key) {
			moved++
		}
	}

	got := float64(moved) / float64(keys)
	want := 1.0 / float64(n+1)
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	assert(diff < 0.01, "moved fraction %.4f too far from expected %.4f", got, want)
}

func TestHashBytesDelegatesToHashUint64(t *testing.T) {
	assert := newAsserter(t)

	h, err := TryNew(96)
	assert(err == nil, "TryNew(96): %v", err)

	buf := []byte("some opaque key")
	a := h.HashBytes(buf)
	b := h.HashBytes(buf)
	assert(a == b, "HashBytes must be deterministic for a fixed key: %d != %d", a, b)
	assert(a < 96, "HashBytes returned out-of-range bucket %d", a)

	want := h.HashUint64(fingerprint.SeaHash(buf))
	assert(a == want, "HashBytes = %d; HashUint64(SeaHash(buf)) = %d", a, want)
}

func TestWithTraceFiresOncePerHash(t *testing.T) {
	assert := newAsserter(t)

	var branches []string
	h, err := TryNew(96, WithTrace(func(branch string, bucket uint32) {
		branches = append(branches, branch)
	}))
	assert(err == nil, "TryNew: %v", err)

	h.HashUint64(0)
	h.HashUint64(999)
	assert(len(branches) == 2, "expected 2 trace calls, got %d", len(branches))
}
