package reader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dball/tomlval/types"
)

func TestReadStr(t *testing.T) {

	upper, _ := types.NewHexUpper(255)
	lower, _ := types.NewHexLower(255)
	oct, _ := types.NewOct(8)
	bin, _ := types.NewBin(5)

	tests := []struct {
		input    string
		expected types.Value
	}{
		{"42", types.NewInteger(42)},
		{" -5 ", types.NewInteger(-5)},
		{"0xFF", upper},
		{"0xff", lower},
		{"0o10", oct},
		{"0b101", bin},
		{"true", types.Boolean(true)},
		{"false", types.Boolean(false)},
		{`"hi"`, types.String("hi")},
		{`"a\"b\\c\nd\te"`, types.String("a\"b\\c\nd\te")},
		{`""`, types.String("")},
	}

	for _, test := range tests {
		value, err := ReadStr(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.expected, value, test.input)
	}
}

func TestReadStrErrors(t *testing.T) {

	for _, input := range []string{"", `"`, `"abc`, `"a\"`, `"\q"`, "0x", "01", "nil"} {
		_, err := ReadStr(input)
		var readerErr Error
		assert.Truef(t, errors.As(err, &readerErr), "input %q", input)
	}

	_, err := ReadStr("0xFFFFFFFFFFFFFFFF")
	assert.True(t, errors.Is(err, types.ErrOutOfRange))
}

func TestReadDocument(t *testing.T) {

	doc, err := ReadDocument("# header\nport = 0x1F90 # 8080\n\n  name=\"svc # 1\"\nmode = 0o644")
	require.NoError(t, err)

	require.Equal(t, 5, doc.Len())
	assert.Equal(t, []string{"port", "name", "mode"}, doc.Keys())

	port, _ := types.NewHexUpper(8080)
	assert.Equal(t,
		types.Line{Key: "port", Value: port, Lead: "port = ", Raw: "0x1F90", Trail: " # 8080\n"},
		doc.Line(1),
	)
	assert.Equal(t,
		types.Line{Key: "name", Value: types.String("svc # 1"), Lead: "  name=", Raw: `"svc # 1"`, Trail: "\n"},
		doc.Line(3),
	)

	mode, _ := types.NewOct(0644)
	assert.Equal(t,
		types.Line{Key: "mode", Value: mode, Lead: "mode = ", Raw: "0o644"},
		doc.Line(4),
	)

	assert.Equal(t, types.Line{Raw: "# header\n"}, doc.Line(0))
	assert.Equal(t, types.Line{Raw: "\n"}, doc.Line(2))
}

func TestReadDocumentErrors(t *testing.T) {

	tests := []struct {
		input string
		line  int
	}{
		{"a = 1\nnot an assignment\n", 2},
		{"a = 1 2\n", 1},
		{"a = \n", 1},
		{"\n\na = \"open\n", 3},
		{"a = -0x1\n", 1},
		{"a = 1\nb = 1__0\n", 2},
	}

	for _, test := range tests {
		_, err := ReadDocument(test.input)
		var readerErr Error
		require.Truef(t, errors.As(err, &readerErr), "input %q", test.input)
		assert.Equal(t, test.line, readerErr.Line, test.input)
	}

	_, err := ReadDocument("a = 0o9\n")
	assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
}

func TestTokenize(t *testing.T) {

	tokens, err := Tokenize(" 0xff\t\"a b\"  \"say \\\"hi\\\"\" true ")
	require.NoError(t, err)
	assert.Equal(t, []string{"0xff", `"a b"`, `"say \"hi\""`, "true"}, tokens)

	tokens, err = Tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	_, err = Tokenize(`1 "open`)
	var readerErr Error
	assert.True(t, errors.As(err, &readerErr))
}
