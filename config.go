package pine

// Config is the runner configuration for an Engine. It is read on every
// execution and must not be mutated once an Engine has been created from
// it: set once, then treat as read-only. Concurrent Run calls sharing one
// Engine are safe under that contract.
type Config struct {
	// Runner is an optional custom runner. When set (and usable), it takes
	// priority over any task resolvable in the namespace.
	Runner RunnerProvider

	// Options is passed to runner-shaped functions (RunnerFunc). An empty
	// map is treated as absent: runners then receive nil.
	Options Options

	// Separator splits task names into namespace segments. Default ":".
	Separator string

	// Logger receives the engine's diagnostics. Defaults to a stderr
	// logger (see logger.go).
	Logger Logger
}

// WithDefaults returns a copy of the config with default values applied.
func (c Config) WithDefaults() Config {
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.Logger == nil {
		c.Logger = defaultLogger()
	}
	return c
}

// TaskExistsFunc decides whether a custom runner can execute the named
// task. It receives the same namespace, name, args and options the runner
// itself would.
type TaskExistsFunc func(ns Namespace, name string, args Args, opts Options) bool

// RunnerProvider supplies the runner-producing function for a custom
// runner. A plain RunnerFunc is a provider; so is *RunnerModule.
type RunnerProvider interface {
	// runnerFunc returns the function to invoke, or nil if the provider
	// has none.
	runnerFunc() RunnerFunc

	// existsFunc returns the optional task-existence predicate, or nil.
	// With no predicate, a non-nil runnerFunc alone counts as "found".
	existsFunc() TaskExistsFunc
}

func (f RunnerFunc) runnerFunc() RunnerFunc { return f }

func (f RunnerFunc) existsFunc() TaskExistsFunc { return nil }

// RunnerModule is a custom runner packaged with an optional existence
// predicate. Default does the work; TaskExists, when set, decides per task
// whether the runner applies.
type RunnerModule struct {
	Default    RunnerFunc
	TaskExists TaskExistsFunc
}

func (m *RunnerModule) runnerFunc() RunnerFunc {
	if m == nil {
		return nil
	}
	return m.Default
}

func (m *RunnerModule) existsFunc() TaskExistsFunc {
	if m == nil {
		return nil
	}
	return m.TaskExists
}
