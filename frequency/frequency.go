// Package frequency models the target clock frequency of an emulated system.
package frequency

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Unit is the magnitude scale of a frequency.
// The values match the C enumeration exported to foreign callers.
type Unit int

const (
	UNIT_KHZ = Unit(0)
	UNIT_MHZ = Unit(1)
	UNIT_GHZ = Unit(2)
)

var unitSuffix = map[Unit]string{
	UNIT_KHZ: "KHz",
	UNIT_MHZ: "MHz",
	UNIT_GHZ: "GHz",
}

var unitScale = map[Unit]float64{
	UNIT_KHZ: 1e3,
	UNIT_MHZ: 1e6,
	UNIT_GHZ: 1e9,
}

// Valid returns true for a known unit.
func (unit Unit) Valid() bool {
	_, ok := unitSuffix[unit]
	return ok
}

func (unit Unit) String() string {
	if suffix, ok := unitSuffix[unit]; ok {
		return suffix
	}
	return "Unit(" + strconv.Itoa(int(unit)) + ")"
}

// Frequency is an immutable tagged magnitude.
type Frequency struct {
	unit      Unit
	magnitude float32
}

// KHz returns a kilohertz frequency.
func KHz(magnitude float32) Frequency {
	return Frequency{unit: UNIT_KHZ, magnitude: magnitude}
}

// MHz returns a megahertz frequency.
func MHz(magnitude float32) Frequency {
	return Frequency{unit: UNIT_MHZ, magnitude: magnitude}
}

// GHz returns a gigahertz frequency.
func GHz(magnitude float32) Frequency {
	return Frequency{unit: UNIT_GHZ, magnitude: magnitude}
}

// New builds a frequency from a unit tag. Unknown units are not ok.
func New(unit Unit, magnitude float32) (freq Frequency, ok bool) {
	if !unit.Valid() {
		return
	}
	return Frequency{unit: unit, magnitude: magnitude}, true
}

// Unit returns the unit tag.
func (freq Frequency) Unit() Unit {
	return freq.unit
}

// Magnitude returns the value in Unit.
func (freq Frequency) Magnitude() float32 {
	return freq.magnitude
}

// Hertz returns the frequency in Hz.
func (freq Frequency) Hertz() float64 {
	return float64(freq.magnitude) * unitScale[freq.unit]
}

// String returns the "<float> <unit>" form accepted by Parse.
func (freq Frequency) String() string {
	return strconv.FormatFloat(float64(freq.magnitude), 'f', -1, 32) + " " + freq.unit.String()
}

// Humanize returns an SI formatted rendition, e.g. "4.194304 MHz".
func (freq Frequency) Humanize() string {
	return humanize.SIWithDigits(freq.Hertz(), 6, "Hz")
}

// Parse reads "<float> <unit>" where unit is KHz, MHz or GHz.
// Any other text is not ok.
func Parse(text string) (freq Frequency, ok bool) {
	for _, unit := range []Unit{UNIT_KHZ, UNIT_MHZ, UNIT_GHZ} {
		value, found := strings.CutSuffix(text, " "+unit.String())
		if !found {
			continue
		}
		magnitude, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return
		}
		return Frequency{unit: unit, magnitude: float32(magnitude)}, true
	}

	return
}
