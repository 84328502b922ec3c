// Command s16info prints the fixed-point kernel configuration of the host
// and checks that the packed kernels agree with the scalar ones.
//
// Usage:
//
//	s16info [flags]
//
// Without flags it prints detected capabilities, the kernel table and the
// result of a packed-vs-generic self-check over a range of block sizes.
//
// Examples:
//
//	s16info
//	s16info -list
//	s16info -impl generic
//	s16info -sizes 1,7,64,1023 -seed 42
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-s16/dsp/core"
	"github.com/cwbudde/algo-s16/dsp/vector"
)

const defaultSizes = "0,1,2,3,4,5,7,8,15,16,17,33,100,1024"

func main() {
	list := flag.Bool("list", false, "list registered kernel implementations and exit")
	impl := flag.String("impl", "auto", "implementation to report as active (auto, generic, packed)")
	sizes := flag.String("sizes", defaultSizes, "comma-separated block sizes for the self-check")
	seed := flag.Int64("seed", 1, "seed for the self-check input signals")
	skipCheck := flag.Bool("nocheck", false, "skip the packed-vs-generic self-check")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: s16info [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints fixed-point kernel selection and runs an equivalence self-check.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  s16info -list\n")
		fmt.Fprintf(os.Stderr, "  s16info -impl generic\n")
		fmt.Fprintf(os.Stderr, "  s16info -sizes 1,7,64,1023 -seed 42\n")
	}
	flag.Parse()

	if *list {
		printKernels(os.Stdout)
		return
	}

	k, err := vector.New(core.WithImplementation(*impl))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	printFeatures(os.Stdout, k.Implementation())
	fmt.Println()
	printKernels(os.Stdout)

	if *skipCheck {
		return
	}

	blockSizes, err := parseSizes(*sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println()
	mismatches := runSelfCheck(blockSizes, *seed)
	if !printSelfCheck(os.Stdout, mismatches, len(blockSizes)) {
		os.Exit(1)
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid block size %q: %w", field, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid block size %d: must be >= 0", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no block sizes given")
	}
	return sizes, nil
}
