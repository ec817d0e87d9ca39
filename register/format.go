package register

import (
	"strconv"
	"strings"
)

// DisplayFormat is the numeric base a register is displayed in.
// The values match the C enumeration exported to foreign callers.
type DisplayFormat int

//go:generate go tool stringer -linecomment -type=DisplayFormat
const (
	FORMAT_HEX     = DisplayFormat(0) // Hex
	FORMAT_BINARY  = DisplayFormat(1) // Binary
	FORMAT_DECIMAL = DisplayFormat(2) // Decimal
	FORMAT_OCTAL   = DisplayFormat(3) // Octal
)

// Valid returns true if format is one of the known display formats.
func (format DisplayFormat) Valid() bool {
	return format >= FORMAT_HEX && format <= FORMAT_OCTAL
}

// Base returns the numeric base of the format. Unknown formats display as hex.
func (format DisplayFormat) Base() int {
	switch format {
	case FORMAT_BINARY:
		return 2
	case FORMAT_DECIMAL:
		return 10
	case FORMAT_OCTAL:
		return 8
	default:
		return 16
	}
}

// Prefix returns the conventional literal prefix for the format.
func (format DisplayFormat) Prefix() string {
	switch format {
	case FORMAT_BINARY:
		return "0b"
	case FORMAT_DECIMAL:
		return ""
	case FORMAT_OCTAL:
		return "0o"
	default:
		return "0x"
	}
}

// ParseDisplayFormat parses a format name, ignoring case.
func ParseDisplayFormat(text string) (format DisplayFormat, err error) {
	name := strings.TrimSpace(text)
	for format = FORMAT_HEX; format <= FORMAT_OCTAL; format++ {
		if strings.EqualFold(name, format.String()) {
			return
		}
	}

	format = FORMAT_HEX
	err = ErrFormatInvalid(text)
	return
}

// FormatValue renders value in the base of format, left padded with zeros
// to at least width digits. Longer representations are never truncated.
func FormatValue(value uint64, format DisplayFormat, width int) (text string) {
	text = strconv.FormatUint(value, format.Base())
	if pad := width - len(text); pad > 0 {
		text = strings.Repeat("0", pad) + text
	}
	return
}

// RequiredDisplayWidth returns the digit count needed by format to show
// every value of a bitWidth wide register.
//
// Decimal uses ceil(bitWidth/3), which over-estimates the true digit count.
func RequiredDisplayWidth(format DisplayFormat, bitWidth int) int {
	switch format {
	case FORMAT_BINARY:
		return bitWidth
	case FORMAT_DECIMAL, FORMAT_OCTAL:
		return (bitWidth + 2) / 3
	default:
		return (bitWidth + 3) / 4
	}
}
