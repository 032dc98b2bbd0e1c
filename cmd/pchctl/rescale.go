// rescale.go -- 'rescale' command implementation
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
	"os"

	"github.com/opencoff/go-pch"
	flag "github.com/opencoff/pflag"
)

type rescaleOp struct{}

func init() {
	registerOp("rescale", &rescaleOp{})
}

func (c *rescaleOp) run(args []string, g *globalFlags) error {
	var n uint
	var k uint

	fs := flag.NewFlagSet("rescale", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.UintVarP(&n, "buckets", "n", 0, "Compare `N` buckets against N+1")
	fs.UintVarP(&k, "keys", "k", 100, "Number of synthetic keys to hash")
	fs.Usage = func() {
		fmt.Printf(`Usage: rescale -n N [options]

Hashes K synthetic keys at N and N+1 buckets and reports the fraction
that moved - the property-7 consistency check from the library's test
suite, runnable interactively when sizing a cluster change.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("rescale: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("rescale: need -n")
	}

	h1, err := pch.TryNew(uint32(n))
	if err != nil {
		return fmt.Errorf("rescale: %w", err)
	}
	h2, err := pch.TryNew(uint32(n) + 1)
	if err != nil {
		return fmt.Errorf("rescale: %w", err)
	}

	var moved uint
	for i := uint64(0); i < uint64(k); i++ {
		key := i * 0x2545f4914f6cdd1d
		if h1.HashUint64(key) != h2.HashUint64(key) {
			moved++
		}
	}

	got := float64(moved) / float64(k)
	want := 1.0 / float64(n+1)
	fmt.Printf("n=%d -> n+1=%d: moved=%d/%d (%.4f), expected ~%.4f\n",
		n, n+1, moved, k, got, want)
	return nil
}
