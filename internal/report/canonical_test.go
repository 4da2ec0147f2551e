package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarkac/advent-of-code/internal/bench"
	"github.com/polarkac/advent-of-code/internal/puzzle"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int64", int64(-100), "-100"},
		{"max uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"empty array", []any{}, "[]"},
		{"string slice", []string{"a", "b"}, `["a","b"]`},
		{"empty object", map[string]any{}, "{}"},
		{"simple object", map[string]any{"a": 1}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalNestedSortedKeys(t *testing.T) {
	obj := map[string]any{
		"z": map[string]any{"b": 1, "a": 2},
		"a": []any{3, "x"},
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[3,"x"],"z":{"a":2,"b":1}}`, string(result))
}

func TestMarshalCanonicalUTF16Ordering(t *testing.T) {
	// U+10000 encodes as a surrogate pair starting 0xD800, which sorts
	// before U+E000 in UTF-16 but after it in UTF-8.
	obj := map[string]any{
		"\uE000":     1,
		"\U00010000": 2,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"\uE000\":1}", string(result))
}

func TestMarshalCanonicalStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no html escaping", "<a&b>", `"<a&b>"`},
		{"control chars escaped", "a\nb\tc", `"a\nb\tc"`},
		{"quote and backslash", `say "hi" \ bye`, `"say \"hi\" \\ bye"`},
		{"line separator literal", "a\u2028b\u2029c", "\"a\u2028b\u2029c\""},
		{"escaped backslash before u2028 text", `\u2028`, `"\\u2028"`},
		{"NFC normalization", "e\u0301", "\"\u00e9\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalRejects(t *testing.T) {
	for _, v := range []any{nil, 1.5, float32(2), map[string]any{"a": nil}, []any{struct{}{}}} {
		_, err := MarshalCanonical(v)
		assert.Error(t, err, "%#v", v)
	}
}

func TestRun(t *testing.T) {
	p := puzzle.Puzzle{Year: 2024, Day: 10, Title: "Hoof It"}
	answers := []puzzle.Answer{
		{Part: 1, Value: "36", Elapsed: time.Second},
		{Part: 2, Value: "81", Elapsed: time.Minute},
	}

	out, err := MarshalCanonical(Run(p, answers))
	require.NoError(t, err)
	assert.Equal(t,
		`{"answers":[{"answer":"36","part":1},{"answer":"81","part":2}],"day":10,"title":"Hoof It","year":2024}`,
		string(out))
}

func TestBench(t *testing.T) {
	p := puzzle.Puzzle{Year: 2015, Day: 1, Title: "Not Quite Lisp"}
	stats := []bench.Stats{{Samples: 25, Min: time.Microsecond, Max: 3 * time.Microsecond, Avg: 2 * time.Microsecond}}

	out, err := MarshalCanonical(Bench(p, stats))
	require.NoError(t, err)
	assert.Equal(t,
		`{"bench":[{"avg_ns":2000,"max_ns":3000,"min_ns":1000,"part":1,"samples":25}],"day":1,"title":"Not Quite Lisp","year":2015}`,
		string(out))
}

func TestCatalog(t *testing.T) {
	out, err := MarshalCanonical(Catalog([]puzzle.Puzzle{
		{Year: 2024, Day: 4, Title: "Ceres Search", Parts: []puzzle.Part{nil}},
	}))
	require.NoError(t, err)
	assert.Equal(t, `[{"day":4,"parts":1,"title":"Ceres Search","year":2024}]`, string(out))
}
