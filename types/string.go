package types

// String - toml basic string values
type String string

// ValueEquals compared strings
func (s String) ValueEquals(that Value) bool {
	thatString, valid := that.(String)
	if !valid {
		return false
	}
	return s == thatString
}

func (s String) hashBytes() []byte {
	return append([]byte(s), byte('"'))
}
