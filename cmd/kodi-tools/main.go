package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	// Commands that walk the library install their own SIGINT handler; a
	// canceled context is an orderly stop, not an error worth printing.
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
