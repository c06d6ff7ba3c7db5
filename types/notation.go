package types

// Notation is the radix an integer is written in
type Notation uint8

const (
	NotationDecimal Notation = iota
	NotationHexadecimal
	NotationOctal
	NotationBinary
)

// Base returns the radix of the notation
func (n Notation) Base() int {
	switch n {
	case NotationHexadecimal:
		return 16
	case NotationOctal:
		return 8
	case NotationBinary:
		return 2
	default:
		return 10
	}
}

// Prefix returns the literal prefix, empty for decimal
func (n Notation) Prefix() string {
	switch n {
	case NotationHexadecimal:
		return "0x"
	case NotationOctal:
		return "0o"
	case NotationBinary:
		return "0b"
	default:
		return ""
	}
}

func (n Notation) String() string {
	switch n {
	case NotationDecimal:
		return "decimal"
	case NotationHexadecimal:
		return "hexadecimal"
	case NotationOctal:
		return "octal"
	case NotationBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Case is the letter case of hexadecimal digits. CaseUnspecified renders
// as uppercase.
type Case uint8

const (
	CaseUnspecified Case = iota
	CaseUpper
	CaseLower
)

func (c Case) String() string {
	switch c {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	default:
		return "unspecified"
	}
}
