// doc.go - top level documentation
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

// Package pch implements Power Consistent Hashing: a deterministic,
// stateless mapping from an opaque key and a bucket count 'n' to a
// bucket id in [0, n). When 'n' changes to a nearby n', only a
// fraction of roughly |n - n'| / max(n, n') keys are reassigned,
// which makes it suitable for sharding data across a cluster of
// nodes without provoking a mass reshuffle on every resize.
//
// The primary user interface is 'TryNew', which builds a 'Hasher'
// for a given bucket count, and 'Hasher.HashUint64' / 'Hasher.HashBytes',
// which map a key onto a bucket. Every operation on a constructed
// 'Hasher' is pure: it performs no I/O, allocates no memory on the
// heap, and is safe to call concurrently from many goroutines
// sharing a single 'Hasher' value.
//
// The algorithm combines a uniform power-of-two mapping ('f'), a
// weighted discrete sampler driven by integer arithmetic ('g'), and
// a seeded PCG32 (XSH-RR 64/32) pseudo-random generator. Both the
// arithmetic and the PRNG are specified down to the bit so that
// 'HashUint64' is reproducible across processes, runs, and hosts.
package pch
