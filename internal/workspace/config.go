package workspace

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// loadConfig reads a TOML configuration file into a generic table. A missing
// file yields an empty table.
func loadConfig(path string) (map[string]any, error) {
	cfg := make(map[string]any)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, err
	}
	return cfg, nil
}

// saveConfig writes cfg as TOML. The workspace is owned by a single
// invocation at a time, so a plain truncating write is sufficient.
func saveConfig(path string, cfg map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Unfold expands dotted keys into nested tables, in place: {"l1.foo": 3}
// becomes {"l1": {"foo": 3}}. Existing nested tables are unfolded
// recursively; non-dotted keys are left alone.
func Unfold(cfg map[string]any) {
	var dotted []string
	for k, v := range cfg {
		if sub, ok := v.(map[string]any); ok {
			Unfold(sub)
		}
		if strings.Contains(k, ".") {
			dotted = append(dotted, k)
		}
	}

	for _, k := range dotted {
		v := cfg[k]
		delete(cfg, k)

		parts := strings.Split(k, ".")
		d := cfg
		for _, sec := range parts[:len(parts)-1] {
			next, ok := d[sec].(map[string]any)
			if !ok {
				next = make(map[string]any)
				d[sec] = next
			}
			d = next
		}
		d[parts[len(parts)-1]] = v
	}
}
