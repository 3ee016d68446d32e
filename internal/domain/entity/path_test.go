package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		absolute bool
		names    []string
	}{
		{name: "single relative", path: "Details", absolute: false, names: []string{"Details"}},
		{name: "double slash absolute", path: "//Home", absolute: true, names: []string{"Home"}},
		{name: "single slash absolute", path: "/Home/Details", absolute: true, names: []string{"Home", "Details"}},
		{name: "empty entries dropped", path: "//A//B/", absolute: true, names: []string{"A", "B"}},
		{name: "query kept on its segment", path: "Tabs/Feed?filter=new/Details", absolute: false, names: []string{"Tabs", "Feed", "Details"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParsePath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.absolute, parsed.Absolute)
			assert.Equal(t, tt.names, parsed.Names())
		})
	}
}

func TestParsePath_DecodesSegmentQuery(t *testing.T) {
	parsed, err := ParsePath("//List/Details?id=42&title=Hello%20World&flag")
	require.NoError(t, err)
	require.Equal(t, 2, parsed.Len())

	details := parsed.Segments[1]
	assert.Equal(t, "Details", details.Name)
	assert.Equal(t, "id=42&title=Hello%20World&flag", details.RawQuery)
	assert.Equal(t, []string{"id", "title", "flag"}, details.Query.Keys())

	title, ok := Lookup[string](details.Query, "title")
	require.True(t, ok)
	assert.Equal(t, "Hello World", title)

	flag, ok := Lookup[string](details.Query, "flag")
	require.True(t, ok)
	assert.Empty(t, flag)

	assert.Equal(t, 0, parsed.Segments[0].Query.Len())
}

func TestParsePath_Errors(t *testing.T) {
	_, err := ParsePath("")
	require.ErrorIs(t, err, ErrEmptyPath)

	_, err = ParsePath("///")
	require.ErrorIs(t, err, ErrEmptyPath)

	_, err = ParsePath("/A/?x=1")
	require.ErrorIs(t, err, ErrEmptySegmentName)

	_, err = ParsePath("/A?x=%zz")
	require.ErrorIs(t, err, ErrMalformedQuery)
}

func TestParsePath_ConcatenationPreservesSegments(t *testing.T) {
	left, err := ParsePath("/A/B")
	require.NoError(t, err)
	right, err := ParsePath("C?x=1/D")
	require.NoError(t, err)

	joined, err := ParsePath("/A/B" + PathSeparator + "C?x=1/D")
	require.NoError(t, err)

	assert.Equal(t, append(left.Names(), right.Names()...), joined.Names())
	assert.Equal(t, "/A/B/C?x=1/D", joined.String())
}

func TestParseQuery_RepeatedKeyKeepsFirstPosition(t *testing.T) {
	params, err := ParseQuery("a=1&b=2&a=3")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, params.Keys())
	a, _ := Lookup[string](params, "a")
	assert.Equal(t, "3", a)
}

func TestEncodeQuery(t *testing.T) {
	params := ParametersOf("id", 7, "name", "a b")
	assert.Equal(t, "id=7&name=a+b", EncodeQuery(params))
	assert.Empty(t, EncodeQuery(nil))

	decoded, err := ParseQuery(EncodeQuery(params))
	require.NoError(t, err)
	name, _ := Lookup[string](decoded, "name")
	assert.Equal(t, "a b", name)
}
