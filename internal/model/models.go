package model

import (
	"github.com/spf13/pflag"
)

func init() {
	Register("Simple", simpleBuilder{})
	Register("Complex", complexBuilder{})
}

// Simple is a toy model demonstrating how parameters are declared.
type Simple struct {
	Foo int
}

func (s *Simple) Config() map[string]any {
	return map[string]any{"foo": s.Foo}
}

type simpleBuilder struct{}

func (simpleBuilder) AddParams(fs *pflag.FlagSet) {
	fs.Int("foo", 10, "dumb param")
}

func (simpleBuilder) Build(params map[string]any) (Model, error) {
	foo, err := Int(params, "foo", 10)
	if err != nil {
		return nil, err
	}
	return &Simple{Foo: foo}, nil
}

// Complex is a toy model demonstrating composition: two Simple submodels
// under the l1 and l2 parameter namespaces.
type Complex struct {
	L1, L2 *Simple
}

func (c *Complex) Config() map[string]any {
	return map[string]any{
		"l1": c.L1.Config(),
		"l2": c.L2.Config(),
	}
}

type complexBuilder struct{}

func (complexBuilder) AddParams(fs *pflag.FlagSet) {
	fs.Int("l1.foo", 10, "dumb param of the first submodel")
	fs.Int("l2.foo", 10, "dumb param of the second submodel")
}

func (complexBuilder) Build(params map[string]any) (Model, error) {
	l1, err := buildSub(params, "l1")
	if err != nil {
		return nil, err
	}
	l2, err := buildSub(params, "l2")
	if err != nil {
		return nil, err
	}
	return &Complex{L1: l1, L2: l2}, nil
}

// buildSub assembles a Simple submodel from either the nested table form
// ({"l1": {"foo": 3}}, as saved in config.toml) or the flat dotted form
// ({"l1.foo": 3}, as produced by flag parsing).
func buildSub(params map[string]any, ns string) (*Simple, error) {
	sub := Table(params, ns)
	if v, ok := params[ns+".foo"]; ok {
		sub["foo"] = v
	}
	m, err := simpleBuilder{}.Build(sub)
	if err != nil {
		return nil, err
	}
	return m.(*Simple), nil
}
