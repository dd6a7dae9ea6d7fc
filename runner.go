package pine

import "context"

// selection is the outcome of runner selection: the function that will
// actually be invoked, wrapped so the engine no longer cares about its
// shape, and the (possibly adjusted) name the task runs under.
type selection struct {
	name    string
	produce func(ctx context.Context) (any, error)
}

// selectRunner decides what executes for name. Order, first match wins:
//
//  1. a configured runner that is directly callable;
//  2. a configured runner module with a callable Default, found according
//     to its TaskExists predicate (or unconditionally without one);
//  3. the task resolved from the namespace, when callable;
//  4. a resolved namespace whose "default" entry is callable; the task
//     then runs under an adjusted name (name + ":default", unless the name
//     already is "default").
//
// If nothing matches, ok is false and the execution is aborted without
// running hooks.
func (e *Engine) selectRunner(ns Namespace, name string, args Args) (selection, bool) {
	opts := e.cfg.Options
	if len(opts) == 0 {
		opts = nil
	}

	if e.cfg.Runner != nil {
		if fn := e.cfg.Runner.runnerFunc(); fn != nil {
			found := true
			if exists := e.cfg.Runner.existsFunc(); exists != nil {
				found = exists(ns, name, args, opts)
			}
			if !found {
				return selection{}, false
			}
			return selection{
				name: name,
				produce: func(ctx context.Context) (any, error) {
					return fn(ctx, ns, name, args, opts)
				},
			}, true
		}
	}

	v, ok := Resolve(ns, name, e.cfg.Separator)
	if !ok {
		return selection{}, false
	}

	if tv, ok := asTaskValue(v); ok {
		return e.taskSelection(ns, name, args, opts, tv), true
	}

	if m, ok := asNamespace(v); ok {
		if tv, ok := asTaskValue(m["default"]); ok {
			if name != "default" {
				name = name + e.cfg.Separator + "default"
			}
			return e.taskSelection(ns, name, args, opts, tv), true
		}
	}

	return selection{}, false
}

// taskSelection wraps a tagged task value into the uniform producer shape.
// Runner and plugin shapes produce a runner value themselves; plain and
// callback tasks are wrapped into a Runner that receives only the args and
// signals completion through done.
func (e *Engine) taskSelection(ns Namespace, name string, args Args, opts Options, tv taskValue) selection {
	sel := selection{name: name}
	switch tv.kind {
	case kindRunner:
		sel.produce = func(ctx context.Context) (any, error) {
			return tv.runner(ctx, ns, name, args, opts)
		}
	case kindPlugin:
		sel.produce = func(ctx context.Context) (any, error) {
			return tv.plugin(ctx, ns, name, args)
		}
	case kindCallback:
		sel.produce = func(context.Context) (any, error) {
			return Runner(func(ctx context.Context, done DoneFunc) {
				tv.cb(ctx, args, done)
			}), nil
		}
	default: // kindTask
		sel.produce = func(context.Context) (any, error) {
			return Runner(func(ctx context.Context, done DoneFunc) {
				done(protect(func() error { return tv.task(ctx, args) }))
			}), nil
		}
	}
	return sel
}
