package pine

import (
	"context"
	"time"
)

// Engine executes tasks out of a namespace, honoring pre/post hooks and the
// configured custom runner. An Engine is immutable and safe for concurrent
// use once created.
type Engine struct {
	cfg Config
	log Logger
}

// New creates an Engine from cfg with defaults applied.
func New(cfg Config) *Engine {
	cfg = cfg.WithDefaults()
	return &Engine{cfg: cfg, log: cfg.Logger}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Run executes the named task and blocks until the whole pre-hook, task,
// post-hook chain has settled. Expected failures (task not found, invalid
// runner, a task failing) are logged through the engine's Logger and never
// returned: Run always comes back normally so that a failing task cannot
// crash its caller or abort sibling hooks.
//
// The execution order is: select the runner (an unknown task aborts here,
// before any hook runs), run the pre-hook if its derived name resolves
// (recursively, with its own hooks), invoke the task, then run the
// post-hook symmetrically.
func (e *Engine) Run(ctx context.Context, ns Namespace, name string, args Args) {
	sel, ok := e.selectRunner(ns, name, args)
	if !ok {
		e.log.Error("task not found", "task", name)
		return
	}

	e.runHook(ctx, ns, hookName(name, "pre", e.cfg.Separator), args)

	e.log.Info("starting", "task", sel.name)
	start := time.Now()
	if err := await(ctx, sel.produce); err != nil {
		e.log.Error("task failed", "task", sel.name, "err", err)
	}
	e.log.Info("finished", "task", sel.name, "duration", time.Since(start).Round(time.Millisecond))

	e.runHook(ctx, ns, hookName(name, "post", e.cfg.Separator), args)
}

// runHook runs name as a full engine execution when it resolves in ns.
// Hooks recurse: a resolvable pre-hook gets its own pre/post hooks, each
// level deriving names fresh. There is no cycle guard; the naming scheme
// itself (only the last segment is prefixed) rules out direct
// self-reference.
func (e *Engine) runHook(ctx context.Context, ns Namespace, name string, args Args) {
	if _, ok := Resolve(ns, name, e.cfg.Separator); ok {
		e.Run(ctx, ns, name, args)
	}
}

// Run executes the named task with a default Engine. See Engine.Run.
func Run(ctx context.Context, ns Namespace, name string, args Args) {
	New(Config{}).Run(ctx, ns, name, args)
}
