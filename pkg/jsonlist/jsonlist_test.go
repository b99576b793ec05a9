package jsonlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]string{
		{"pool", "gym", "garage"},
		{"single"},
		{"dup", "dup", "dup"},
		{"ordered-z", "ordered-a"},
		{"with spaces", "with,comma", `with"quote`},
		{},
	}
	for _, in := range cases {
		out := Decode(Encode(in))
		assert.Equal(t, len(in), len(out))
		for i := range in {
			assert.Equal(t, in[i], out[i])
		}
	}
}

func TestEncodeEmptyIsCanonicalToken(t *testing.T) {
	assert.Equal(t, "[]", Encode(nil))
	assert.Equal(t, "[]", Encode([]string{}))
}

func TestDecodeToleratesBadInput(t *testing.T) {
	for _, s := range []string{
		"",
		"not json",
		"{",
		`{"a":1}`,
		"[1,2,3]",
		"null",
	} {
		got := Decode(s)
		assert.NotNil(t, got, "input %q", s)
		assert.Empty(t, got, "input %q", s)
	}
}

func TestDecodePreservesOrderAndContent(t *testing.T) {
	got := Decode(`["Infinity Pool","Smart Home","Gym"]`)
	assert.Equal(t, []string{"Infinity Pool", "Smart Home", "Gym"}, got)
}
