package pine

import "strings"

// ResolveTask looks up a task by name in ns using the default separator.
// It returns the resolved value and whether a task was found. The resolved
// value is either a callable task value, or a Namespace whose "default"
// entry has been flattened (see Resolve).
func ResolveTask(ns Namespace, name string) (any, bool) {
	return Resolve(ns, name, DefaultSeparator)
}

// Resolve walks ns one name segment at a time and returns the value found.
// Absence and invalidity both report false; Resolve never fails otherwise.
//
// The rules, in order:
//
//   - an empty name or namespace resolves to nothing;
//   - a missing segment anywhere along the path resolves to nothing;
//   - a callable value resolves to itself;
//   - a non-empty namespace with a callable "_" entry collapses to that
//     callable (the namespace's default task);
//   - a namespace whose "default" entry is itself a namespace with a
//     callable "_" gets "default" flattened to that callable, and the
//     (copied) namespace is returned;
//   - a non-empty namespace whose "_" entry is absent is returned as is;
//     a present but non-callable "_" invalidates the namespace.
func Resolve(ns Namespace, name, sep string) (any, bool) {
	if len(ns) == 0 || name == "" {
		return nil, false
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	cur := any(ns)
	for _, seg := range strings.Split(name, sep) {
		m, ok := asNamespace(cur)
		if !ok {
			return nil, false
		}
		v, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return normalize(cur)
}

// normalize applies the "_"/"default" collapsing rules to a resolved value.
func normalize(v any) (any, bool) {
	if isCallable(v) {
		return v, true
	}

	m, ok := asNamespace(v)
	if !ok || len(m) == 0 {
		return nil, false
	}

	if def, present := m["_"]; present {
		if !isCallable(def) {
			return nil, false
		}
		return def, true
	}

	// Flatten a collapsible "default" entry so downstream consumers see a
	// plain callable. The namespace is copied; resolution never mutates the
	// caller's tree.
	if d, present := m["default"]; present {
		if dm, ok := asNamespace(d); ok {
			if def, p := dm["_"]; p && isCallable(def) {
				out := make(Namespace, len(m))
				for k, val := range m {
					out[k] = val
				}
				out["default"] = def
				return out, true
			}
		}
	}

	return m, true
}
