// hash.go -- 'hash' command implementation
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
	"strconv"

	"github.com/opencoff/go-pch"
	flag "github.com/opencoff/pflag"
)

type hashOp struct{}

func init() {
	registerOp("hash", &hashOp{})
}

func (c *hashOp) run(args []string, g *globalFlags) error {
	var n uint
	var asString bool

	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.UintVarP(&n, "buckets", "n", 0, "Hash against `N` buckets")
	fs.BoolVarP(&asString, "string", "s", false, "Treat KEY arguments as opaque byte strings, not uint64")
	fs.Usage = func() {
		fmt.Printf(`Usage: hash -n N [options] KEY...

where:
   N      is the number of buckets
   KEY    is one or more keys to hash (uint64 by default, or a string with -s)

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("hash: %w", err)
	}

	keys := fs.Args()
	if n == 0 || len(keys) == 0 {
		return fmt.Errorf("hash: need -n and at least one KEY")
	}

	h, err := pch.TryNew(uint32(n))
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}

	for _, k := range keys {
		if asString {
			fmt.Printf("%q -> %d\n", k, h.HashBytes([]byte(k)))
			continue
		}

		key, err := strconv.ParseUint(k, 0, 64)
		if err != nil {
			return fmt.Errorf("hash: %q: %w", k, err)
		}
		fmt.Printf("%d -> %d\n", key, h.HashUint64(key))
	}

	return nil
}
