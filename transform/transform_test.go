package transform_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/0xalexb/envconf/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalars(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		fn       transform.Func
		raw      string
		expected any
		wantErr  bool
	}{
		{name: "string keeps raw", fn: transform.String(), raw: " as is ", expected: " as is "},
		{name: "non empty trims", fn: transform.NonEmpty(), raw: " value ", expected: "value"},
		{name: "non empty rejects blank", fn: transform.NonEmpty(), raw: "  ", wantErr: true},
		{name: "int", fn: transform.Int(), raw: "42", expected: 42},
		{name: "int negative", fn: transform.Int(), raw: "-7", expected: -7},
		{name: "int with spaces", fn: transform.Int(), raw: " 10 ", expected: 10},
		{name: "int invalid", fn: transform.Int(), raw: "abc", wantErr: true},
		{name: "int64 hex", fn: transform.Int64(), raw: "0x10", expected: int64(16)},
		{name: "uint", fn: transform.Uint(), raw: "3", expected: uint(3)},
		{name: "uint negative", fn: transform.Uint(), raw: "-3", wantErr: true},
		{name: "float", fn: transform.Float(), raw: "3.5", expected: 3.5},
		{name: "float invalid", fn: transform.Float(), raw: "pi", wantErr: true},
		{name: "bool true", fn: transform.Bool(), raw: "true", expected: true},
		{name: "bool one", fn: transform.Bool(), raw: "1", expected: true},
		{name: "bool false", fn: transform.Bool(), raw: "FALSE", expected: false},
		{name: "bool invalid", fn: transform.Bool(), raw: "yes please", wantErr: true},
		{name: "duration", fn: transform.Duration(), raw: "1m30s", expected: 90 * time.Second},
		{name: "duration invalid", fn: transform.Duration(), raw: "soon", wantErr: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result, err := testCase.fn(testCase.raw)
			if testCase.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestInt_WrapsParseError(t *testing.T) {
	t.Parallel()

	_, err := transform.Int()("abc")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestList(t *testing.T) {
	t.Parallel()

	result, err := transform.List(",", transform.Int())("1, 2,,3")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, result)

	_, err = transform.List(",", transform.Int())("1,x")
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "item 1")
}

func TestStrings(t *testing.T) {
	t.Parallel()

	result, err := transform.Strings(";")("a; b;;c ")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, result)

	result, err = transform.Strings(",")("")
	require.NoError(t, err)
	assert.Equal(t, []string{}, result)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	fn := transform.OneOf("debug", "info")

	result, err := fn("INFO")
	require.NoError(t, err)
	assert.Equal(t, "info", result)

	_, err = fn("trace")
	require.ErrorIs(t, err, transform.ErrNotAllowed)
	assert.Contains(t, err.Error(), "debug, info")
}
