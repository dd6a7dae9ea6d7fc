package pine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRunnerNotRegistered is returned by LookupRunner for unknown names.
var ErrRunnerNotRegistered = errors.New("runner not registered")

var (
	runnersMu sync.RWMutex
	runners   = make(map[string]RunnerProvider)
)

// RegisterRunner makes a custom runner available by name, so it can be
// selected by identifier (for example via the CLI's --runner flag).
// It panics if the provider is nil or the name is already taken.
func RegisterRunner(name string, p RunnerProvider) {
	if p == nil {
		panic("pine.RegisterRunner: provider is nil")
	}
	runnersMu.Lock()
	defer runnersMu.Unlock()
	if _, dup := runners[name]; dup {
		panic("pine.RegisterRunner: called twice for runner " + name)
	}
	runners[name] = p
}

// LookupRunner returns the runner registered under name.
func LookupRunner(name string) (RunnerProvider, error) {
	runnersMu.RLock()
	defer runnersMu.RUnlock()
	p, ok := runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRunnerNotRegistered, name)
	}
	return p, nil
}

// RunnerNames returns the names of all registered runners, sorted.
func RunnerNames() []string {
	runnersMu.RLock()
	defer runnersMu.RUnlock()
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
