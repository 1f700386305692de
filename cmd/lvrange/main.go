// Command lvrange prints stepped ranges of integers, floats, characters and
// time instants.
//
//	lvrange int 1 10 --step 3        → 1 4 7 10
//	lvrange int 10 1                 → 10 9 8 7 6 5 4 3 2 1
//	lvrange int -5 5 -s -5           → -5 0 5
//	lvrange char a e -s 2            → a c e
//	lvrange float 0 1 -s 0.25        → 0 0.25 0.5 0.75 1
//	lvrange time 2024-01-01T00:00:00Z --step 6h --take 4
//
// Omitting END produces an unbounded range; --take limits how many elements
// are printed (10 when unset). Negative numbers are accepted as endpoints
// and flag values without a "--" separator.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvrange:", err)
		os.Exit(1)
	}
}
