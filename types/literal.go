package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dball/tomlval/ex"
)

var (
	// ErrInvalidLiteral matches literals that are not toml integers
	ErrInvalidLiteral = ex.Ex{Code: "Invalid integer literal"}
	// ErrOutOfRange matches literals that do not fit in 64 bits
	ErrOutOfRange = ex.Ex{Code: "Integer literal out of range"}

	errEmptyDigits     = errors.New("no digits")
	errUnderscore      = errors.New("underscore must be between digits")
	errLeadingZero     = errors.New("leading zeros are not allowed")
	errSignedPrefix    = errors.New("prefixed integers cannot be signed")
	errDigitOutOfRange = errors.New("digit not valid in base")
)

// ParseInteger reads a toml integer literal, keeping its notation. Hex
// literals whose letters are all lowercase or all uppercase keep that case;
// otherwise the case is left unspecified. Digits without letters say nothing
// about case, so reading back the String of NewHexUpper(16), "0x10", gives an
// unspecified integer that is not equal to it.
func ParseInteger(literal string) (Integer, error) {
	notation, sign, digits := splitLiteral(literal)
	if notation != NotationDecimal && sign != "" {
		return Integer{}, ErrInvalidLiteral.With(errSignedPrefix, "literal", literal)
	}
	if err := checkDigits(digits, notation.Base()); err != nil {
		return Integer{}, ErrInvalidLiteral.With(err, "literal", literal)
	}
	clean := strings.ReplaceAll(digits, "_", "")
	if notation == NotationDecimal && len(clean) > 1 && clean[0] == '0' {
		return Integer{}, ErrInvalidLiteral.With(errLeadingZero, "literal", literal)
	}
	value, err := strconv.ParseInt(sign+clean, notation.Base(), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Integer{}, ErrOutOfRange.With(err, "literal", literal)
		}
		return Integer{}, ErrInvalidLiteral.With(err, "literal", literal)
	}
	switch notation {
	case NotationHexadecimal:
		switch hexCaseOf(clean) {
		case CaseUpper:
			return NewHexUpper(value)
		case CaseLower:
			return NewHexLower(value)
		default:
			return newHexUnspecified(value)
		}
	case NotationOctal:
		return NewOct(value)
	case NotationBinary:
		return NewBin(value)
	default:
		return NewInteger(value), nil
	}
}

func splitLiteral(literal string) (Notation, string, string) {
	sign := ""
	rest := literal
	if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
		sign, rest = rest[:1], rest[1:]
	}
	if len(rest) >= 2 && rest[0] == '0' {
		switch rest[1] {
		case 'x':
			return NotationHexadecimal, sign, rest[2:]
		case 'o':
			return NotationOctal, sign, rest[2:]
		case 'b':
			return NotationBinary, sign, rest[2:]
		}
	}
	return NotationDecimal, sign, rest
}

func checkDigits(digits string, base int) error {
	if digits == "" {
		return errEmptyDigits
	}
	previous := byte('_')
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '_' {
			if previous == '_' {
				return errUnderscore
			}
		} else if digitValue(c) >= base {
			return errDigitOutOfRange
		}
		previous = c
	}
	if previous == '_' {
		return errUnderscore
	}
	return nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}

func hexCaseOf(digits string) Case {
	var upper, lower bool
	for i := 0; i < len(digits); i++ {
		switch c := digits[i]; {
		case 'a' <= c && c <= 'f':
			lower = true
		case 'A' <= c && c <= 'F':
			upper = true
		}
	}
	switch {
	case upper && !lower:
		return CaseUpper
	case lower && !upper:
		return CaseLower
	default:
		return CaseUnspecified
	}
}
