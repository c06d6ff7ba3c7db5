package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dball/tomlval/types"
)

func TestConvert(t *testing.T) {

	lower, _ := types.NewHexLower(255)
	upper, _ := types.NewHexUpper(255)
	oct, _ := types.NewOct(255)
	bin, _ := types.NewBin(255)

	converted, err := Convert(types.NewInteger(255), types.NotationHexadecimal)
	require.NoError(t, err)
	assert.Equal(t, upper, converted)

	converted, err = Convert(lower, types.NotationHexadecimal)
	require.NoError(t, err)
	assert.Equal(t, lower, converted)

	converted, err = Convert(lower, types.NotationOctal)
	require.NoError(t, err)
	assert.Equal(t, oct, converted)

	converted, err = Convert(oct, types.NotationBinary)
	require.NoError(t, err)
	assert.Equal(t, bin, converted)
	assert.Equal(t, "0b11111111", converted.String())

	converted, err = Convert(bin, types.NotationDecimal)
	require.NoError(t, err)
	assert.Equal(t, types.NewInteger(255), converted)
}

func TestConvertErrors(t *testing.T) {

	for _, notation := range []types.Notation{
		types.NotationHexadecimal,
		types.NotationOctal,
		types.NotationBinary,
	} {
		_, err := Convert(types.NewInteger(-1), notation)
		assert.True(t, errors.Is(err, types.InvalidInteger{}))
	}

	_, err := Convert(types.Boolean(true), types.NotationDecimal)
	assert.True(t, errors.Is(err, invalidType))

	_, err = Convert(types.NewInteger(1), types.Notation(42))
	assert.True(t, errors.Is(err, invalidNotation))
}

func TestCompare(t *testing.T) {

	hex, _ := types.NewHexUpper(5)

	c, err := Compare(types.NewInteger(5), hex)
	require.NoError(t, err)
	assert.Equal(t, int8(0), c)

	c, err = Compare(types.NewInteger(-9223372036854775808), types.NewInteger(1))
	require.NoError(t, err)
	assert.Equal(t, int8(-1), c)

	c, err = Compare(hex, types.NewInteger(-1))
	require.NoError(t, err)
	assert.Equal(t, int8(1), c)

	_, err = Compare(types.String("5"), hex)
	assert.Error(t, err)
	_, err = Compare(hex, types.String("5"))
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {

	lower, _ := types.NewHexLower(10)
	oct, _ := types.NewOct(8)

	assert.Equal(t,
		map[string]interface{}{"type": "integer", "notation": "hexadecimal", "case": "lower", "value": int64(10)},
		Describe(lower),
	)
	assert.Equal(t,
		map[string]interface{}{"type": "integer", "notation": "octal", "value": int64(8)},
		Describe(oct),
	)
	assert.Equal(t, map[string]interface{}{"type": "boolean", "value": true}, Describe(types.Boolean(true)))
	assert.Equal(t, map[string]interface{}{"type": "string", "value": "x"}, Describe(types.String("x")))
	assert.Equal(t, map[string]interface{}{"type": "unknown"}, Describe(nil))
}
