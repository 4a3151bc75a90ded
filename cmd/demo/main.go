package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/exactmath/fraction"
)

// This is just a demo of the presentation glue: two integers in, the
// simplified fraction, reciprocal and float projection out.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <numerator> <denominator>\n", os.Args[0])
		os.Exit(2)
	}

	num, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "numerator: %v\n", err)
		os.Exit(2)
	}
	den, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "denominator: %v\n", err)
		os.Exit(2)
	}

	f, err := fraction.NewWithFeedback(num, den)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("fraction:   %s\n", f)
	fmt.Printf("simplified: %s\n", f.Simplify())
	if r, ok := f.Reciprocal(); ok {
		fmt.Printf("reciprocal: %s\n", r)
	} else {
		fmt.Println("reciprocal: undefined (zero numerator)")
	}
	fmt.Printf("float:      %g\n", f.Float64())
	fmt.Printf("rounded:    %d\n", f.Round())
}
