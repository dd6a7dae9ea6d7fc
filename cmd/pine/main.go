// Command pine runs tasks from a pinefile.
//
// Usage:
//
//	pine [flags] <task> [-key=value ...]
//	pine list
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pinefile/pine"
)

func main() {
	pine.RegisterRunner("shell", pine.ShellRunner())

	if err := newRootCmd().Execute(); err != nil {
		// Task failures were already logged by the engine; anything else
		// still needs to be reported.
		if !errors.Is(err, errTasksFailed) {
			fmt.Fprintln(os.Stderr, "pine:", err)
		}
		os.Exit(1)
	}
}

// errTasksFailed signals a non-zero exit after the engine logged at least
// one error.
var errTasksFailed = errors.New("one or more tasks failed")
