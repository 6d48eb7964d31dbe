package model

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"Complex", "Simple"}, Names())

	_, err := Lookup("Simple")
	require.NoError(t, err)

	_, err = Lookup("Nonexistent")
	assert.ErrorContains(t, err, `unknown model "Nonexistent"`)
	assert.ErrorContains(t, err, "Simple")
}

func TestParseSimple(t *testing.T) {
	m, params, err := Parse("Simple", []string{"--foo=3"})
	require.NoError(t, err)
	assert.Equal(t, 3, m.(*Simple).Foo)
	assert.Equal(t, map[string]any{"foo": 3}, params)
}

func TestParseSimple_Defaults(t *testing.T) {
	m, params, err := Parse("Simple", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, m.(*Simple).Foo)
	assert.Equal(t, map[string]any{"foo": 10}, params)
}

func TestParseSimple_BadArgs(t *testing.T) {
	_, _, err := Parse("Simple", []string{"--foo=banana"})
	assert.Error(t, err)

	_, _, err = Parse("Simple", []string{"--bar=1"})
	assert.Error(t, err)
}

func TestParseComplex(t *testing.T) {
	m, _, err := Parse("Complex", []string{"--l1.foo=3", "--l2.foo=4"})
	require.NoError(t, err)
	c := m.(*Complex)
	assert.Equal(t, 3, c.L1.Foo)
	assert.Equal(t, 4, c.L2.Foo)
	assert.Equal(t, map[string]any{
		"l1": map[string]any{"foo": 3},
		"l2": map[string]any{"foo": 4},
	}, c.Config())
}

func TestBuildFromTOMLTypes(t *testing.T) {
	// config.toml decodes integers as int64 and may nest namespaces.
	b, err := Lookup("Complex")
	require.NoError(t, err)
	m, err := b.Build(map[string]any{
		"l1": map[string]any{"foo": int64(7)},
		"l2": map[string]any{"foo": int64(8)},
	})
	require.NoError(t, err)
	c := m.(*Complex)
	assert.Equal(t, 7, c.L1.Foo)
	assert.Equal(t, 8, c.L2.Foo)
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]any
		want    int
		wantErr bool
	}{
		{"missing uses default", map[string]any{}, 42, false},
		{"go int", map[string]any{"x": 5}, 5, false},
		{"toml int64", map[string]any{"x": int64(6)}, 6, false},
		{"float64", map[string]any{"x": 7.0}, 7, false},
		{"numeric string", map[string]any{"x": "8"}, 8, false},
		{"bad string", map[string]any{"x": "nope"}, 0, true},
		{"unsupported type", map[string]any{"x": []int{1}}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int(tt.params, "x", 42)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParams(t *testing.T) {
	fs := pflag.NewFlagSet("t", pflag.ContinueOnError)
	fs.Int("n", 1, "")
	fs.Float64("rate", 0.5, "")
	fs.Bool("shuffle", false, "")
	fs.String("name", "x", "")
	require.NoError(t, fs.Parse([]string{"--n=2", "--shuffle"}))

	assert.Equal(t, map[string]any{
		"n":       2,
		"rate":    0.5,
		"shuffle": true,
		"name":    "x",
	}, Params(fs))
}
