// cmds.go -- bucket-op registry and dispatch
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

package main

import (
	"fmt"
	"sync"
)

// bucketOp is one pchctl verb (hash, balance, rescale, ...) operating
// against a bucket count.
type bucketOp interface {
	run(args []string, g *globalFlags) error
}

var ops = struct {
	sync.Mutex
	m map[string]bucketOp
}{
	m: make(map[string]bucketOp),
}

func registerOp(verb string, op bucketOp) {
	ops.Lock()
	if _, ok := ops.m[verb]; ok {
		panic(fmt.Sprintf("%s already registered", verb))
	}
	ops.m[verb] = op
	ops.Unlock()
}

func dispatch(args []string, g *globalFlags) error {
	verb := args[0]

	ops.Lock()
	defer ops.Unlock()
	op, ok := ops.m[verb]
	if !ok {
		return fmt.Errorf("pchctl: no such verb %q (want hash, balance or rescale)", verb)
	}

	return op.run(args, g)
}

// globalFlags holds flags shared across every verb.
type globalFlags struct {
	verbose bool
}

func (g *globalFlags) Verbosef(s string, v ...interface{}) {
	if g.verbose {
		fmt.Printf(s, v...)
	}
}
