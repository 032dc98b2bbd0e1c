// assert.go - no-op invariant checks for production builds
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

//go:build !pchdebug

package pch

// debugAssert is a no-op in normal builds. Build with the "pchdebug"
// tag to turn the loop invariants in weightedSample into panics - see
// assert_debug.go.
func debugAssert(cond bool, msg string) {}
