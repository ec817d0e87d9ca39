package register

const (
	BIT_WIDTH_MIN = 1  // Narrowest register.
	BIT_WIDTH_MAX = 64 // Widest register.
)

// Register is a named numeric value with a display format.
// The display precision always tracks the format and bit width.
type Register struct {
	Value uint64 // Current value.

	format    DisplayFormat
	bitWidth  int
	precision int
}

// NewRegister creates a register. The bit width is clamped to 1..64.
func NewRegister(value uint64, format DisplayFormat, bitWidth int) (reg *Register) {
	bitWidth = min(max(bitWidth, BIT_WIDTH_MIN), BIT_WIDTH_MAX)

	reg = &Register{
		Value:    value,
		bitWidth: bitWidth,
	}
	reg.UpdateDisplayFormat(format)

	return
}

// Format returns the current display format.
func (reg *Register) Format() DisplayFormat {
	return reg.format
}

// BitWidth returns the register width in bits.
func (reg *Register) BitWidth() int {
	return reg.bitWidth
}

// Precision returns the number of digits the value is padded to.
func (reg *Register) Precision() int {
	return reg.precision
}

// UpdateDisplayFormat replaces the display format and its precision together.
func (reg *Register) UpdateDisplayFormat(format DisplayFormat) {
	reg.format = format
	reg.precision = RequiredDisplayWidth(format, reg.bitWidth)
}

// Digits returns the padded value without a prefix.
func (reg *Register) Digits() string {
	return FormatValue(reg.Value, reg.format, reg.precision)
}

// String returns the padded value with its format prefix.
func (reg *Register) String() string {
	return reg.format.Prefix() + reg.Digits()
}
