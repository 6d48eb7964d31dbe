// Package model defines the model interface, the registry of available
// models, and parameter handling. Each model declares its parameters (name,
// default, help) on a pflag.FlagSet so that CLI parsing, help output, and
// defaults all come from a single declaration.
package model

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// Model is a configured model instance.
type Model interface {
	// Config returns the resolved parameter values, nested per namespace.
	Config() map[string]any
}

// Builder declares a model's parameters and constructs instances from a
// parameter table. The table may come from CLI parsing (Go native types) or
// from a decoded config.toml (TOML types, e.g. int64).
type Builder interface {
	AddParams(fs *pflag.FlagSet)
	Build(params map[string]any) (Model, error)
}

// Parse builds a model from CLI-style arguments checked against its
// declared parameters. Unknown or malformed arguments are errors.
func Parse(name string, args []string) (Model, map[string]any, error) {
	b, err := Lookup(name)
	if err != nil {
		return nil, nil, err
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	b.AddParams(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}

	params := Params(fs)
	m, err := b.Build(params)
	if err != nil {
		return nil, nil, err
	}
	return m, params, nil
}

// Params extracts every declared flag value from fs into a generic
// parameter table, keeping native types for the common flag kinds.
func Params(fs *pflag.FlagSet) map[string]any {
	out := make(map[string]any)
	fs.VisitAll(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "int":
			v, _ := fs.GetInt(f.Name)
			out[f.Name] = v
		case "float64":
			v, _ := fs.GetFloat64(f.Name)
			out[f.Name] = v
		case "bool":
			v, _ := fs.GetBool(f.Name)
			out[f.Name] = v
		default:
			out[f.Name] = f.Value.String()
		}
	})
	return out
}

// Int reads an integer parameter, accepting the numeric types produced by
// flag parsing (int) and TOML decoding (int64, float64) as well as numeric
// strings. Missing keys fall back to def.
func Int(params map[string]any, key string, def int) (int, error) {
	v, ok := params[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("parameter %q: %q is not an integer", key, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("parameter %q: unsupported type %T", key, v)
	}
}

// Table returns the nested table stored under key, or an empty table.
func Table(params map[string]any, key string) map[string]any {
	sub, ok := params[key].(map[string]any)
	if !ok {
		return make(map[string]any)
	}
	out := make(map[string]any, len(sub))
	for k, v := range sub {
		out[k] = v
	}
	return out
}
