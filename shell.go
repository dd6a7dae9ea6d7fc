package pine

import (
	"context"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Shell returns a task that runs command through an embedded POSIX shell
// interpreter, writing to the process's stdout/stderr. Task args are
// exported into the command's environment as KEY=value pairs.
func Shell(command string) TaskFunc {
	return ShellOut(StdOutput(), command)
}

// ShellOut is Shell with explicit output writers.
func ShellOut(out *Output, command string) TaskFunc {
	return func(ctx context.Context, args Args) error {
		prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
		if err != nil {
			return fmt.Errorf("parse shell command: %w", err)
		}

		env := os.Environ()
		for k, v := range args {
			env = append(env, fmt.Sprintf("%s=%v", k, v))
		}

		runner, err := interp.New(
			interp.Env(expand.ListEnviron(env...)),
			interp.StdIO(nil, out.Stdout, out.Stderr),
		)
		if err != nil {
			return fmt.Errorf("create shell interpreter: %w", err)
		}
		return runner.Run(ctx, prog)
	}
}

// ShellRunner returns a custom runner that treats namespace leaves as shell
// command strings: the pinefile holds commands, the runner holds the
// execution. Callable leaves still work, so shell and function tasks can be
// mixed under one runner.
//
// Register it to make it selectable by name:
//
//	pine.RegisterRunner("shell", pine.ShellRunner())
func ShellRunner() RunnerProvider {
	return &RunnerModule{
		Default: func(ctx context.Context, ns Namespace, name string, args Args, opts Options) (any, error) {
			v, ok := shellLookup(ns, name)
			if !ok {
				return nil, fmt.Errorf("no shell command for task %q", name)
			}
			switch cmd := v.(type) {
			case string:
				return func(ctx context.Context) error {
					return ShellOut(StdOutput(), cmd)(ctx, args)
				}, nil
			default:
				if tv, ok := asTaskValue(v); ok && tv.kind == kindTask {
					return func(ctx context.Context) error {
						return tv.task(ctx, args)
					}, nil
				}
				return v, nil
			}
		},
		TaskExists: func(ns Namespace, name string, _ Args, _ Options) bool {
			v, ok := shellLookup(ns, name)
			if !ok {
				return false
			}
			if _, isString := v.(string); isString {
				return true
			}
			return isCallable(v)
		},
	}
}

// shellLookup walks the namespace like Resolve but accepts string leaves,
// collapsing a namespace to its "_" entry when present.
func shellLookup(ns Namespace, name string) (any, bool) {
	if len(ns) == 0 || name == "" {
		return nil, false
	}
	cur := any(ns)
	for _, seg := range strings.Split(name, DefaultSeparator) {
		m, ok := asNamespace(cur)
		if !ok {
			return nil, false
		}
		v, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = v
	}
	if m, ok := asNamespace(cur); ok {
		if def, present := m["_"]; present {
			cur = def
		}
	}
	return cur, true
}
