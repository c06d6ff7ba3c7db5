package types

// Boolean - toml true and false
type Boolean bool

// ValueEquals is true only for another Boolean of the same truth
func (boolean Boolean) ValueEquals(that Value) bool {
	thatBoolean, valid := that.(Boolean)
	return valid && boolean == thatBoolean
}

func (boolean Boolean) hashBytes() []byte {
	if boolean {
		return []byte("b1")
	}
	return []byte("b0")
}
