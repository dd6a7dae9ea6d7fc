package pine

import "testing"

func TestHookName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		sep    string
		want   string
	}{
		{"task", "post", ":", "posttask"},
		{"a:b", "pre", ":", "a:preb"},
		{"build:sub", "pre", ":", "build:presub"},
		{"a:b:c", "post", ":", "a:b:postc"},
		{"a.b", "pre", ".", "a.preb"},
		{"task", "pre", "", "pretask"},
	}
	for _, tt := range tests {
		if got := hookName(tt.name, tt.prefix, tt.sep); got != tt.want {
			t.Errorf("hookName(%q, %q, %q) = %q, want %q", tt.name, tt.prefix, tt.sep, got, tt.want)
		}
	}
}

// A derived hook name must never equal the task's own name; this is what
// keeps hook recursion from ever pointing a task at itself.
func TestHookName_NeverSelfReferential(t *testing.T) {
	t.Parallel()

	names := []string{"build", "build:sub", "a:b:c", "pre", "prebuild", "build:prebuild"}
	for _, name := range names {
		for _, prefix := range []string{"pre", "post"} {
			if hookName(name, prefix, ":") == name {
				t.Errorf("hookName(%q, %q) derived the task's own name", name, prefix)
			}
		}
	}
}
