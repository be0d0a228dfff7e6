// Command quickdecimal formats uint32 values, verifies the encoder against
// trusted references and benchmarks it.
//
// Usage:
//
//	quickdecimal format [-sep s] [N ...]
//	quickdecimal verify [-config file] [-from N] [-to N] [-workers N] [-ref name,...] [-boundaries] [-plain]
//	quickdecimal bench [-config file] [-samples N] [-seed N]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

var errMismatch = errors.New("encoder disagrees with reference")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "format":
		err = runFormat(args, os.Stdin, os.Stdout)
	case "verify":
		err = runVerify(args, os.Stdout)
	case "bench":
		err = runBench(args, os.Stdout)
	case "help", "-h", "-help", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: quickdecimal format [-sep s] [N ...]")
	fmt.Fprintln(os.Stderr, "       quickdecimal verify [-config file] [-from N] [-to N] [-workers N] [-ref name,...] [-boundaries] [-plain]")
	fmt.Fprintln(os.Stderr, "       quickdecimal bench [-config file] [-samples N] [-seed N]")
	fmt.Fprintln(os.Stderr, "Run 'quickdecimal <command> -h' for the flags of a command.")
}
