package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/qdocs/demolint/internal/cli"
	"github.com/qdocs/demolint/pkg/demolint"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(demolint.ExitPanic)
		}
	}()

	if os.Getenv("DEMOLINT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(demolint.ExitCodeForError(err))
	}
}
