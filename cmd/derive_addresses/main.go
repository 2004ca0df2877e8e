// One-off: derive the full role address book for a hex seed on every
// network. Handy for eyeballing determinism against another wallet.
// Usage: go run ./cmd/derive_addresses <64-hex-char-seed>
package main

import (
	"fmt"
	"os"

	"github.com/nel349/midnight-mobile-connector/internal/common"
	"github.com/nel349/midnight-mobile-connector/shield"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_addresses <64-hex-char-seed>")
		os.Exit(1)
	}

	seed, err := common.ParseHexSeed(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(seed)

	keys, skipped, err := shield.DeriveRoleKeyPairs(seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(skipped) > 0 {
		fmt.Fprintf(os.Stderr, "skipped roles: %v\n", skipped)
	}

	codec := shield.NewCodec()
	for _, network := range shield.AllNetworks {
		fmt.Printf("== %s ==\n", network)
		for i := range keys {
			addr, err := codec.EncodeRole(&keys[i], network)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("%-14s %s\n", keys[i].Role, addr)
		}
	}

	for i := range keys {
		keys[i].Wipe()
	}
}
