package declare

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propverify/pkg/explore"
	"github.com/nomagicln/propverify/pkg/prop"
	"github.com/nomagicln/propverify/pkg/verifier"
)

// explored returns the formatted values of every passing path of the strategy
// declared by src, without duplicates, in the order they were first seen.
func explored(t *testing.T, src string) []string {
	t.Helper()

	var n Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &n))
	s, err := compileNode(&n)
	require.NoError(t, err)

	seen := make(map[string]bool)
	var out []string
	p := explore.Func("node", func(v verifier.Verifier) error {
		x, err := s.Value(v)
		if err != nil {
			return err
		}
		if f := prop.Format(x); !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
		return nil
	})
	_, err = explore.New(explore.WithMaxRuns(0)).Explore(context.Background(), p)
	require.NoError(t, err)
	return out
}

func TestStrategyValues(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"typed just", "{just: {type: i8, value: -3}}", []string{"-3"}},
		{"untyped just", "{just: hello}", []string{"hello"}},
		{"bool", "bool", []string{"false", "true"}},
		{"range", "{range: {type: i8, start: -2, end: 2}}", []string{"-2", "-1", "0", "1"}},
		{"inclusive range", "{range: {type: u8, start: 3, end: 5, inclusive: true}}", []string{"3", "4", "5"}},
		{"range from", "{range: {type: u8, start: 254}}", []string{"254", "255"}},
		{"range to inclusive", "{range: {type: i8, end: -127, inclusive: true}}", []string{"-128", "-127"}},
		{"hex bound", "{range: {type: u16, start: 0xfffe}}", []string{"65534", "65535"}},
		{"wide range", "{range: {type: i32, start: 100000, end: 100003}}", []string{"100000", "100001", "100002"}},
		{"wide inclusive range", "{range: {type: u64, start: 1000, end: 1002, inclusive: true}}", []string{"1000", "1001", "1002"}},
		{
			"vec",
			"{vec: {size: 2, element: bool}}",
			[]string{"[false false]", "[false true]", "[true false]", "[true true]"},
		},
		{
			"array",
			"{array: {size: 2, element: {range: {type: u8, start: 0, end: 2}}}}",
			[]string{"[0 0]", "[0 1]", "[1 0]", "[1 1]"},
		},
		{
			"linked list",
			"{linked_list: {size: 1, element: {just: 9}}}",
			[]string{"[9]"},
		},
		{
			"btree set",
			"{btree_set: {size: 2, element: {range: {type: u8, start: 0, end: 3}}}}",
			[]string{"[0]", "[0 1]", "[0 2]", "[1]", "[1 2]", "[2]"},
		},
		{
			"binary heap",
			"{binary_heap: {size: 2, element: {range: {type: u8, start: 0, end: 2}}}}",
			[]string{"[0 0]", "[1 0]", "[1 1]"},
		},
		{
			"btree map",
			"{btree_map: {size: 1, key: {range: {type: u8, start: 0, end: 2}}, value: bool}}",
			[]string{"{0: false}", "{0: true}", "{1: false}", "{1: true}"},
		},
		{"union", "{union: [{just: 1}, {just: 2}]}", []string{"1", "2"}},
		{"one of", "{one_of: [{just: a}, {just: b}, {just: c}]}", []string{"a", "b", "c"}},
		{"option", "{option: {just: 7}}", []string{"None", "Some(7)"}},
		{"result", "{result: {ok: {just: 1}, err: {just: e}}}", []string{"Ok(1)", "Err(e)"}},
		{"tuple", "{tuple: [bool, {just: x}]}", []string{"[false x]", "[true x]"}},
		{
			"filter",
			`{filter: {strategy: {range: {type: u8, start: 0, end: 6}}, where: "Mul(it, 2) > 6"}}`,
			[]string{"4", "5"},
		},
		{
			"filter rejects overflow",
			`{filter: {strategy: {range: {type: u8, start: 0, end: 10}}, where: "Add(it, 250) > 0"}}`,
			[]string{"0", "1", "2", "3", "4", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, explored(t, tt.src))
		})
	}
}

func TestCharValues(t *testing.T) {
	values := explored(t, "char")
	require.NotEmpty(t, values)
	for _, s := range values {
		assert.Equal(t, 1, utf8.RuneCountInString(s), "value %q", s)
	}
}

func TestMapLookup(t *testing.T) {
	m := Map{Keys: []any{uint8(1), uint8(4)}, Values: []any{"one", "four"}}

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get(4)
	assert.True(t, ok)
	assert.Equal(t, "four", v)
	_, ok = m.Get(uint8(2))
	assert.False(t, ok)
	assert.Equal(t, "{1: one, 4: four}", m.String())
}
