package pine

import (
	"context"
	"strings"
	"testing"
)

func noopTask(_ context.Context, _ Args) error { return nil }

func TestResolve_Simple(t *testing.T) {
	t.Parallel()

	ns := Namespace{"build": TaskFunc(noopTask)}

	v, ok := ResolveTask(ns, "build")
	if !ok {
		t.Fatal("ResolveTask(build) not found")
	}
	if _, ok := v.(TaskFunc); !ok {
		t.Fatalf("resolved value has type %T, want TaskFunc", v)
	}
}

func TestResolve_Nested(t *testing.T) {
	t.Parallel()

	ns := Namespace{
		"db": Namespace{
			"migrate": TaskFunc(noopTask),
			"seed": Namespace{
				"demo": TaskFunc(noopTask),
			},
		},
	}

	for _, name := range []string{"db:migrate", "db:seed:demo"} {
		if _, ok := ResolveTask(ns, name); !ok {
			t.Errorf("ResolveTask(%q) not found", name)
		}
	}
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	ns := Namespace{
		"build": TaskFunc(noopTask),
		"group": Namespace{"inner": TaskFunc(noopTask)},
		"empty": Namespace{},
		"bad":   Namespace{"_": "not callable", "x": TaskFunc(noopTask)},
		"value": 42,
	}

	tests := []struct {
		name string
		task string
	}{
		{"empty name", ""},
		{"missing task", "deploy"},
		{"missing intermediate", "nope:inner"},
		{"missing leaf", "group:missing"},
		{"path through callable", "build:deeper"},
		{"empty namespace", "empty"},
		{"non-callable underscore", "bad"},
		{"non-callable leaf", "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if v, ok := ResolveTask(ns, tt.task); ok {
				t.Errorf("ResolveTask(%q) = %T, want not found", tt.task, v)
			}
		})
	}

	if _, ok := ResolveTask(nil, "build"); ok {
		t.Error("ResolveTask(nil, build) found, want not found")
	}
}

func TestResolve_UnderscoreCollapses(t *testing.T) {
	t.Parallel()

	ns := Namespace{
		"deploy": Namespace{
			"_":       TaskFunc(noopTask),
			"staging": TaskFunc(noopTask),
		},
	}

	v, ok := ResolveTask(ns, "deploy")
	if !ok {
		t.Fatal("ResolveTask(deploy) not found")
	}
	if _, ok := v.(TaskFunc); !ok {
		t.Fatalf("namespace with callable _ resolved to %T, want the _ TaskFunc", v)
	}
}

func TestResolve_DefaultFlattens(t *testing.T) {
	t.Parallel()

	ns := Namespace{
		"deploy": Namespace{
			"default": Namespace{"_": TaskFunc(noopTask)},
			"other":   TaskFunc(noopTask),
		},
	}

	v, ok := ResolveTask(ns, "deploy")
	if !ok {
		t.Fatal("ResolveTask(deploy) not found")
	}
	m, ok := v.(Namespace)
	if !ok {
		t.Fatalf("resolved value has type %T, want Namespace", v)
	}
	if _, ok := m["default"].(TaskFunc); !ok {
		t.Fatalf("default entry has type %T, want flattened TaskFunc", m["default"])
	}

	// The caller's tree must be untouched.
	orig := ns["deploy"].(Namespace)["default"]
	if _, ok := orig.(Namespace); !ok {
		t.Errorf("resolution mutated the namespace: default is now %T", orig)
	}
}

func TestResolve_PlainNamespaceReturned(t *testing.T) {
	t.Parallel()

	ns := Namespace{"group": Namespace{"inner": TaskFunc(noopTask)}}

	v, ok := ResolveTask(ns, "group")
	if !ok {
		t.Fatal("ResolveTask(group) not found")
	}
	if _, ok := v.(Namespace); !ok {
		t.Fatalf("resolved value has type %T, want Namespace", v)
	}
}

func TestResolve_RawSignaturesAndMaps(t *testing.T) {
	t.Parallel()

	// Plain function literals and decoded map[string]any trees work without
	// conversions to the named types.
	ns := Namespace{
		"group": map[string]any{
			"run": func(_ context.Context, _ Args) error { return nil },
		},
	}

	if _, ok := ResolveTask(ns, "group:run"); !ok {
		t.Fatal("ResolveTask(group:run) not found")
	}
}

func TestResolve_CustomSeparator(t *testing.T) {
	t.Parallel()

	ns := Namespace{"a": Namespace{"b": TaskFunc(noopTask)}}

	if _, ok := Resolve(ns, "a.b", "."); !ok {
		t.Error("Resolve(a.b, .) not found")
	}
	if _, ok := Resolve(ns, "a:b", ""); !ok {
		t.Error("Resolve with empty separator should fall back to the default")
	}
}

// Resolution must agree with a manual walk over the split segments.
func TestResolve_MatchesManualWalk(t *testing.T) {
	t.Parallel()

	ns := Namespace{
		"a": Namespace{
			"b": Namespace{
				"c": TaskFunc(noopTask),
			},
		},
	}

	name := "a:b:c"
	var cur any = ns
	for _, seg := range strings.Split(name, ":") {
		cur = cur.(Namespace)[seg]
	}

	v, ok := ResolveTask(ns, name)
	if !ok {
		t.Fatal("ResolveTask(a:b:c) not found")
	}
	want := cur.(TaskFunc)
	got, ok := v.(TaskFunc)
	if !ok {
		t.Fatalf("resolved value has type %T", v)
	}
	_ = want
	_ = got // func values are not comparable; reaching here with both typed is the property
}
