// cache.go - memoizing wrapper around Hasher
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
	arc "github.com/hashicorp/golang-lru/arc/v2"

	"github.com/opencoff/go-pch/fingerprint"
)

// CachingHasher wraps a Hasher with an ARC cache of recently seen
// key -> bucket mappings, the same opportunistic-cache pattern
// go-mph's own DBReader uses for its value lookups (there via
// arc.ARCCache[uint64, []byte]; here, arc.ARCCache[uint64, uint32]).
//
// It is an optional convenience layer, not part of the core
// algorithm: constructing one never changes which bucket a key maps
// to, it only avoids recomputing the PRNG/MSB arithmetic for keys
// that repeat on a hot path. CachingHasher is safe for concurrent use
// - the wrapped arc.ARCCache is internally synchronized - even though
// the wrapped Hasher needed no synchronization to begin with.
type CachingHasher struct {
	h     *Hasher
	cache *arc.ARCCache[uint64, uint32]
}

// NewCachingHasher wraps h with an ARC cache sized for up to size
// recent keys. size <= 0 is rejected with the same error arc.NewARC
// returns for a non-positive size.
func NewCachingHasher(h *Hasher, size int) (*CachingHasher, error) {
	cache, err := arc.NewARC[uint64, uint32](size)
	if err != nil {
		return nil, err
	}

	return &CachingHasher{
		h:     h,
		cache: cache,
	}, nil
}

// N returns the number of buckets of the wrapped Hasher.
func (c *CachingHasher) N() uint32 {
	return c.h.N()
}

// HashUint64 returns the cached bucket for key if present, otherwise
// computes it via the wrapped Hasher and caches the result.
func (c *CachingHasher) HashUint64(key uint64) uint32 {
	if bucket, ok := c.cache.Get(key); ok {
		return bucket
	}

	bucket := c.h.HashUint64(key)
	c.cache.Add(key, bucket)
	return bucket
}

// HashBytes fingerprints buf with SeaHash and delegates to
// HashUint64, so repeated byte-string keys are cached too.
func (c *CachingHasher) HashBytes(buf []byte) uint32 {
	return c.HashUint64(fingerprint.SeaHash(buf))
}
