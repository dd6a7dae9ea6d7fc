package pine

import "strings"

// hookName derives the pre/post hook name for a task by prefixing only the
// last name segment: hookName("build:sub", "pre", ":") == "build:presub".
//
// Because the prefix is non-empty and only the final segment changes, a
// derived hook name can never equal the task's own name, so hook execution
// cannot recurse into itself directly.
func hookName(name, prefix, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	segs := strings.Split(name, sep)
	segs[len(segs)-1] = prefix + segs[len(segs)-1]
	return strings.Join(segs, sep)
}
