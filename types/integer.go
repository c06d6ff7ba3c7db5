package types

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Integer - toml integer values, remembering the notation they are written in.
// Two integers are equal only when notation, case and value all match, so
// 5 and 0x5 are different values.
type Integer struct {
	notation Notation
	hexCase  Case
	value    int64
}

// InvalidInteger is returned when a non-decimal integer would be negative
type InvalidInteger struct {
	_ struct{}
}

func (InvalidInteger) Error() string {
	return "invalid integer"
}

// NewInteger builds a decimal integer
func NewInteger(value int64) Integer {
	return Integer{notation: NotationDecimal, value: value}
}

// NewHexUpper builds a hexadecimal integer rendered with uppercase digits
func NewHexUpper(value int64) (Integer, error) {
	return newUnsigned(NotationHexadecimal, CaseUpper, value)
}

// NewHexLower builds a hexadecimal integer rendered with lowercase digits
func NewHexLower(value int64) (Integer, error) {
	return newUnsigned(NotationHexadecimal, CaseLower, value)
}

// newHexUnspecified builds a hexadecimal integer whose case the literal did
// not decide
func newHexUnspecified(value int64) (Integer, error) {
	return newUnsigned(NotationHexadecimal, CaseUnspecified, value)
}

// NewOct builds an octal integer
func NewOct(value int64) (Integer, error) {
	return newUnsigned(NotationOctal, CaseUnspecified, value)
}

// NewBin builds a binary integer
func NewBin(value int64) (Integer, error) {
	return newUnsigned(NotationBinary, CaseUnspecified, value)
}

func newUnsigned(notation Notation, hexCase Case, value int64) (Integer, error) {
	if value < 0 {
		return Integer{}, InvalidInteger{}
	}
	return Integer{notation: notation, hexCase: hexCase, value: value}, nil
}

// Value returns the number regardless of notation
func (i Integer) Value() int64 {
	return i.value
}

// Int64 converts to a plain int64
func (i Integer) Int64() int64 {
	return i.value
}

// Notation the integer is written in
func (i Integer) Notation() Notation {
	return i.notation
}

// Case of the hexadecimal digits, CaseUnspecified for other notations
func (i Integer) Case() Case {
	return i.hexCase
}

// IsDec reports decimal notation
func (i Integer) IsDec() bool {
	return i.notation == NotationDecimal
}

// IsHex reports hexadecimal notation
func (i Integer) IsHex() bool {
	return i.notation == NotationHexadecimal
}

// IsOct reports octal notation
func (i Integer) IsOct() bool {
	return i.notation == NotationOctal
}

// IsBin reports binary notation
func (i Integer) IsBin() bool {
	return i.notation == NotationBinary
}

// WithCase returns a hexadecimal integer with the given digit case. Other
// notations are returned unchanged.
func (i Integer) WithCase(c Case) Integer {
	if i.notation != NotationHexadecimal {
		return i
	}
	return Integer{notation: i.notation, hexCase: c, value: i.value}
}

// String renders the canonical literal: no padding, no grouping
func (i Integer) String() string {
	switch i.notation {
	case NotationHexadecimal:
		digits := strconv.FormatInt(i.value, 16)
		if i.hexCase != CaseLower {
			digits = strings.ToUpper(digits)
		}
		return "0x" + digits
	case NotationOctal:
		return "0o" + strconv.FormatInt(i.value, 8)
	case NotationBinary:
		return "0b" + strconv.FormatInt(i.value, 2)
	default:
		return strconv.FormatInt(i.value, 10)
	}
}

// ValueEquals compares integers, notation included
func (i Integer) ValueEquals(that Value) bool {
	thatInt, valid := that.(Integer)
	if !valid {
		return false
	}
	return i == thatInt
}

func (i Integer) hashBytes() []byte {
	b := make([]byte, 11)
	b[0] = 'i'
	b[1] = byte(i.notation)
	b[2] = byte(i.hexCase)
	binary.LittleEndian.PutUint64(b[3:], uint64(i.value))
	return b
}
