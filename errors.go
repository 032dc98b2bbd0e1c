// errors.go - public errors exposed by pch
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
	"errors"
)

var (
	// ErrNotEnoughBuckets is returned by TryNew when asked to build a
	// Hasher with fewer than 2 buckets. Power consistent hashing needs
	// at least two buckets to make a choice at all.
	ErrNotEnoughBuckets = errors.New("pch: at least 2 buckets are required")
)
