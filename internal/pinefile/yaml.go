package pinefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pinefile/pine"
)

// LoadYAML reads a YAML pinefile. String values are shell commands, nested
// mappings are namespaces; the "_" and "default" conventions apply as in
// any other namespace:
//
//	build: go build ./...
//	prebuild: go generate ./...
//	db:
//	  _: echo usage
//	  migrate: migrate up
func LoadYAML(path string) (pine.Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	ns, err := yamlNamespace(raw, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ns, nil
}

func yamlNamespace(raw map[string]any, prefix string) (pine.Namespace, error) {
	ns := make(pine.Namespace, len(raw))
	for key, v := range raw {
		at := prefix + key
		switch tv := v.(type) {
		case string:
			ns[key] = pine.Shell(tv)
		case map[string]any:
			nested, err := yamlNamespace(tv, at+":")
			if err != nil {
				return nil, err
			}
			ns[key] = nested
		default:
			return nil, fmt.Errorf("task %q has unsupported type %T (want string or mapping)", at, v)
		}
	}
	return ns, nil
}
