package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    IRValue
		expected string
	}{
		{"string", IRString("hello"), `"hello"`},
		{"empty string", IRString(""), `""`},
		{"int", IRInt(42), "42"},
		{"negative int", IRInt(-100), "-100"},
		{"min int64", IRInt(-9223372036854775808), "-9223372036854775808"},
		{"bool true", IRBool(true), "true"},
		{"bool false", IRBool(false), "false"},
		{"empty array", IRArray{}, "[]"},
		{"empty object", IRObject{}, "{}"},
		{"walk", IntArray([]int64{-1, 0, 1}), "[-1,0,1]"},
		{"html not escaped", IRString("<a&b>"), `"<a&b>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalSortedKeys(t *testing.T) {
	obj := IRObject{
		"timestamp":  IRString("t"),
		"data":       IRArray{IRInt(1)},
		"parameters": IRObject{"x0": IRInt(0), "count": IRInt(1)},
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"data":[1],"parameters":{"count":1,"x0":0},"timestamp":"t"}`, string(result))
}

func TestSortedKeysUTF16Order(t *testing.T) {
	// U+1F600 encodes as a surrogate pair (0xD83D...) which sorts before U+FF61.
	obj := IRObject{"\uff61": IRInt(1), "\U0001F600": IRInt(2)}
	assert.Equal(t, []string{"\U0001F600", "\uff61"}, obj.SortedKeys())
}

func TestMarshalCanonicalNFC(t *testing.T) {
	decomposed := IRString("e\u0301")
	result, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(result))
}

func TestMarshalCanonicalLineSeparators(t *testing.T) {
	result, err := MarshalCanonical(IRString("a\u2028b\u2029c"))
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(result))

	literal, err := MarshalCanonical(IRString(`x\u2028`))
	require.NoError(t, err)
	assert.Equal(t, `"x\\u2028"`, string(literal))
}

func TestMarshalCanonicalRejectsNil(t *testing.T) {
	_, err := MarshalCanonical(IRObject{"revision": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null is forbidden")
}

func TestDigestStable(t *testing.T) {
	v := IRObject{"data": IntArray([]int{1, 0, -1})}
	d1, err := Digest(DomainRecord, v)
	require.NoError(t, err)
	d2 := MustDigest(DomainRecord, v)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)

	other := MustDigest(DomainWalk, v)
	assert.NotEqual(t, d1, other, "domains must separate digests")
}

func TestMustDigestPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustDigest(DomainRecord, IRArray{nil})
	})
}
