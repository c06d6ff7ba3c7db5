package runtime

import (
	"github.com/dball/tomlval/ex"
	"github.com/dball/tomlval/types"
)

var (
	invalidType     = ex.Ex{Code: "Invalid type"}
	invalidNotation = ex.Ex{Code: "Invalid notation"}
)

// Convert re-expresses an integer in another notation. Hexadecimal results
// keep the source case when the source is hexadecimal, and are uppercase
// otherwise.
func Convert(value types.Value, notation types.Notation) (types.Integer, error) {
	integer, valid := value.(types.Integer)
	if !valid {
		return types.Integer{}, invalidType.With(nil, "value", value)
	}
	n := integer.Value()
	switch notation {
	case types.NotationDecimal:
		return types.NewInteger(n), nil
	case types.NotationHexadecimal:
		hex, err := types.NewHexUpper(n)
		if err != nil {
			return types.Integer{}, err
		}
		if integer.IsHex() {
			return hex.WithCase(integer.Case()), nil
		}
		return hex, nil
	case types.NotationOctal:
		return types.NewOct(n)
	case types.NotationBinary:
		return types.NewBin(n)
	default:
		return types.Integer{}, invalidNotation.With(nil, "notation", notation)
	}
}

// Compare orders integers by number alone, ignoring notation
func Compare(this types.Value, that types.Value) (int8, error) {
	thisInt, valid := this.(types.Integer)
	if !valid {
		return 0, invalidType.With(nil, "value", this)
	}
	thatInt, valid := that.(types.Integer)
	if !valid {
		return 0, invalidType.With(nil, "value", that)
	}
	switch a, b := thisInt.Value(), thatInt.Value(); {
	case a > b:
		return 1, nil
	case a == b:
		return 0, nil
	default:
		return -1, nil
	}
}

// Describe summarizes a value for display
func Describe(value types.Value) map[string]interface{} {
	switch v := value.(type) {
	case types.Integer:
		description := map[string]interface{}{
			"type":     "integer",
			"notation": v.Notation().String(),
			"value":    v.Value(),
		}
		if v.IsHex() {
			description["case"] = v.Case().String()
		}
		return description
	case types.Boolean:
		return map[string]interface{}{"type": "boolean", "value": bool(v)}
	case types.String:
		return map[string]interface{}{"type": "string", "value": string(v)}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}
