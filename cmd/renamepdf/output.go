package main

import (
	"fmt"
	"os"
)

// outputError writes an error message to stderr.
func outputError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// outputWarning writes a warning to stderr without affecting the exit
// code.
func outputWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
