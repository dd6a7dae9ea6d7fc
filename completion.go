package pine

import (
	"context"
	"fmt"
	"sync"
)

// The completion bridge normalizes whatever a runner-producing function
// returns into a single Runner, and funnels every way a task can finish
// (return, done callback, panic) through one DoneFunc.

// runnerOf normalizes a produced runner value. Accepted shapes:
//
//   - Runner (or its raw signature): used as is;
//   - func(ctx) error / func() error: a runner that does not accept a
//     completion callback; it is invoked, awaited, and its error becomes
//     the completion signal;
//   - anything else is replaced by a runner that fails immediately, naming
//     the offending value's type ("null" for nil).
func runnerOf(v any) Runner {
	switch r := v.(type) {
	case Runner:
		return r
	case func(ctx context.Context, done DoneFunc):
		return r
	case func(ctx context.Context) error:
		return func(ctx context.Context, done DoneFunc) {
			done(protect(func() error { return r(ctx) }))
		}
	case func() error:
		return func(_ context.Context, done DoneFunc) {
			done(protect(r))
		}
	case nil:
		return failingRunner(fmt.Errorf("invalid runner: null"))
	default:
		return failingRunner(fmt.Errorf("invalid runner of type %T", v))
	}
}

// failingRunner returns a Runner that completes immediately with err.
func failingRunner(err error) Runner {
	return func(_ context.Context, done DoneFunc) {
		done(err)
	}
}

// await invokes produce, bridges its value into a Runner, runs it, and
// blocks until the completion callback fires. Panics anywhere along the way
// become the completion error; they are never re-raised.
func await(ctx context.Context, produce func(ctx context.Context) (any, error)) error {
	errc := make(chan error, 1)
	var once sync.Once
	done := func(err error) {
		once.Do(func() { errc <- err })
	}

	func() {
		defer func() {
			if p := recover(); p != nil {
				done(recovered(p))
			}
		}()
		v, err := produce(ctx)
		if err != nil {
			done(err)
			return
		}
		runnerOf(v)(ctx, done)
	}()

	return <-errc
}

// protect runs fn, converting a panic into the returned error.
func protect(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = recovered(p)
		}
	}()
	return fn()
}

func recovered(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("task panic: %v", p)
}
