package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	root := newRootCmd(newCLI(os.Stdin, os.Stdout, os.Stderr))
	if err := root.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "  hint: %s\n", hint)
	}
}
