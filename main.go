// Package main is the entry point for the dockreport application.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zorak1103/dockreport/cmd"
)

func main() {
	// Unhandled panics are printed with their stack trace and exit 1.
	// Exit code semantics: 0 = success (including an unavailable runtime), 1 = error or panic
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n❌ PANIC: %v\n", r)
			fmt.Fprintf(os.Stderr, "\nStack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
