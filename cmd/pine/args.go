package main

import (
	"fmt"
	"strings"

	"github.com/pinefile/pine"
)

// parseTaskArgs parses everything after the task name into the task's
// argument bag. Three forms are supported:
//
//   - -key=value (explicit value)
//   - -key value (value as next arg, if the next arg doesn't start with -)
//   - -key (boolean flag, true)
func parseTaskArgs(argv []string) (pine.Args, error) {
	if len(argv) == 0 {
		return pine.Args{}, nil
	}
	args := make(pine.Args, len(argv))
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if !strings.HasPrefix(arg, "-") {
			return nil, fmt.Errorf("invalid argument %q: expected -key=value or -key value format", arg)
		}
		key := strings.TrimLeft(arg, "-")
		if key == "" {
			return nil, fmt.Errorf("invalid argument %q: missing key", arg)
		}
		if k, v, ok := strings.Cut(key, "="); ok {
			args[k] = v
		} else if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
			i++
			args[key] = argv[i]
		} else {
			args[key] = true
		}
	}
	return args, nil
}
