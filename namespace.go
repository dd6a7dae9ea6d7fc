package pine

import "context"

// DefaultSeparator splits task names into namespace segments.
const DefaultSeparator = ":"

// Args is the argument bag passed to a task, typically parsed from the CLI.
type Args map[string]any

// Options holds auxiliary configuration passed to runner-shaped functions.
type Options map[string]any

// DoneFunc signals that a task instance has finished. It is called with nil
// on success and with the failure otherwise. Only the first call counts;
// later calls are ignored.
type DoneFunc func(err error)

// Runner performs the work of one task instance and reports completion
// through done. A Runner must eventually call done, even on failure.
type Runner func(ctx context.Context, done DoneFunc)

// TaskFunc is the plain task shape: do the work, return when it is done.
type TaskFunc func(ctx context.Context, args Args) error

// CallbackTaskFunc is the callback task shape: the task signals completion
// itself by calling done, possibly from another goroutine.
type CallbackTaskFunc func(ctx context.Context, args Args, done DoneFunc)

// PluginFunc is the plugin shape: instead of doing the work directly, it
// receives the namespace, the task name and the arguments, and produces a
// runner value (see Runner and the bridging rules in completion.go).
type PluginFunc func(ctx context.Context, ns Namespace, name string, args Args) (any, error)

// RunnerFunc is the runner shape: like PluginFunc but additionally receives
// the configured Options. opts is nil when no options are configured.
type RunnerFunc func(ctx context.Context, ns Namespace, name string, args Args, opts Options) (any, error)

// Namespace is a tree of task values. Values are task functions (one of
// TaskFunc, CallbackTaskFunc, PluginFunc, RunnerFunc, or their raw function
// signatures) or nested Namespace values. Two keys are special:
//
//   - "_" is the default task of a namespace: a namespace with a callable
//     "_" is itself runnable by its own name.
//   - "default" marks the entry used when a resolved namespace is executed
//     directly (see Resolve).
type Namespace map[string]any

// valueKind tags the callable shapes. Dispatch is by explicit tag, never by
// inspecting a function's parameters at runtime.
type valueKind int

const (
	kindTask valueKind = iota
	kindCallback
	kindPlugin
	kindRunner
)

// taskValue is the tagged view of a callable namespace entry.
type taskValue struct {
	kind   valueKind
	task   TaskFunc
	cb     CallbackTaskFunc
	plugin PluginFunc
	runner RunnerFunc
}

// asTaskValue normalizes v into its tagged callable form. Both the named
// types and their raw function signatures are accepted, so a pinefile can
// use plain function literals without conversions.
func asTaskValue(v any) (taskValue, bool) {
	switch f := v.(type) {
	case TaskFunc:
		return taskValue{kind: kindTask, task: f}, true
	case func(context.Context, Args) error:
		return taskValue{kind: kindTask, task: f}, true
	case CallbackTaskFunc:
		return taskValue{kind: kindCallback, cb: f}, true
	case func(context.Context, Args, DoneFunc):
		return taskValue{kind: kindCallback, cb: f}, true
	case PluginFunc:
		return taskValue{kind: kindPlugin, plugin: f}, true
	case func(context.Context, Namespace, string, Args) (any, error):
		return taskValue{kind: kindPlugin, plugin: f}, true
	case RunnerFunc:
		return taskValue{kind: kindRunner, runner: f}, true
	case func(context.Context, Namespace, string, Args, Options) (any, error):
		return taskValue{kind: kindRunner, runner: f}, true
	}
	return taskValue{}, false
}

// isCallable reports whether v is one of the task function shapes.
func isCallable(v any) bool {
	_, ok := asTaskValue(v)
	return ok
}

// asNamespace normalizes v into a Namespace. Raw map[string]any values are
// accepted so namespaces can come straight out of decoded YAML or similar.
func asNamespace(v any) (Namespace, bool) {
	switch m := v.(type) {
	case Namespace:
		return m, true
	case map[string]any:
		return Namespace(m), true
	}
	return nil, false
}
