// Package pine is a task runner: it executes named tasks out of a nested
// namespace ("pinefile"), running pre/post hooks around each task and
// delegating the actual invocation to a pluggable runner.
//
// A namespace maps colon-separated task names to task functions:
//
//	ns := pine.Namespace{
//	    "build":     pine.TaskFunc(build),
//	    "prebuild":  pine.TaskFunc(clean),
//	    "postbuild": pine.TaskFunc(notify),
//	    "db": pine.Namespace{
//	        "migrate": pine.TaskFunc(migrate),
//	    },
//	}
//
//	pine.Run(ctx, ns, "build", pine.Args{"env": "prod"})
//
// Running "build" resolves the task, runs "prebuild" first (itself with its
// own hooks), invokes "build", and finishes with "postbuild". A namespace
// entry named "_" is the namespace's default task; "db" above with a "_"
// entry would make "db" itself runnable.
//
// Expected failures (unknown task, invalid runner, a task returning an
// error) are logged and never propagate out of Run: a failing task does not
// abort its sibling hooks or crash the caller. Wrap the Logger to observe
// failures programmatically.
package pine
