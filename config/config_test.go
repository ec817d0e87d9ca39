package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/emuview/emulator"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

const testYaml = `
Name: My Emulator GUI
ClockFrequency: 4.194304 MHz
Registers:
  GeneralPurpose:
    R1: 20
    R2: 0
    R3: 0
    R4: 200
  Control:
    SP: 256
    PC: 0
Instructions:
  NOP: 1
  LD [HL]: 3
  SRA A: 2
`

func TestParse(t *testing.T) {
	assert := assert.New(t)

	doc, err := Parse([]byte(testYaml))
	assert.NoError(err)

	assert.Equal("My Emulator GUI", doc.Name)
	assert.Equal("4.194304 MHz", doc.ClockFrequency)
	assert.Len(doc.Registers, 2)
	assert.Len(doc.Registers["GeneralPurpose"], 4)
	assert.Equal(RegisterValue{Value: 200, Width: DEFAULT_BIT_WIDTH, Format: register.FORMAT_HEX}, doc.Registers["GeneralPurpose"]["R4"])
	assert.Nil(doc.FrameBuffer)

	st := doc.State()
	assert.Equal("My Emulator GUI", st.Name)
	assert.Equal(frequency.MHz(4.194304), *st.Frequency)
	assert.Nil(st.FrameBuffer)

	reg, ok := st.ResolveRegister("Control", "SP")
	assert.True(ok)
	assert.Equal(uint64(256), reg.Value)
	assert.Equal("0x00000100", reg.String())
}

func TestParse_RegisterForms(t *testing.T) {
	assert := assert.New(t)

	doc, err := Parse([]byte(`
Registers:
  CPU:
    A: 0x1f
    B: "0x100 + 4"
    C: "1 << 12"
    D: {Value: 5, Width: 8, Format: binary}
    E: {Format: Octal}
    F:
FrameBuffer: {Width: 160, Height: 144}
`))
	assert.NoError(err)

	cpu := doc.Registers["CPU"]
	assert.Equal(uint64(0x1f), cpu["A"].Value)
	assert.Equal(uint64(0x104), cpu["B"].Value)
	assert.Equal(uint64(4096), cpu["C"].Value)
	assert.Equal(RegisterValue{Value: 5, Width: 8, Format: register.FORMAT_BINARY}, cpu["D"])
	assert.Equal(RegisterValue{Value: 0, Width: DEFAULT_BIT_WIDTH, Format: register.FORMAT_OCTAL}, cpu["E"])

	st := doc.State()
	assert.Equal(emulator.DEFAULT_NAME, st.Name)
	assert.Nil(st.Frequency)
	assert.Equal(160*144*4, st.FrameBuffer.RequiredLength())

	reg, _ := st.ResolveRegister("CPU", "D")
	assert.Equal("0b00000101", reg.String())

	reg, ok := st.ResolveRegister("CPU", "F")
	assert.True(ok)
	assert.Equal(DEFAULT_BIT_WIDTH, reg.BitWidth())
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"Registers: [1, 2",
		"Registers:\n  CPU:\n    A: -1\n",
		"Registers:\n  CPU:\n    A: \"'text'\"\n",
		"Registers:\n  CPU:\n    A: \"1 +\"\n",
		"Registers:\n  CPU:\n    A: {Format: roman}\n",
		"Registers:\n  CPU:\n    A: [1]\n",
	}

	for _, text := range table {
		doc, err := Parse([]byte(text))
		assert.Nil(doc, text)
		var parse *ErrParse
		assert.True(errors.As(err, &parse), text)
	}
}

func TestParse_BadFrequency(t *testing.T) {
	assert := assert.New(t)

	doc, err := Parse([]byte("ClockFrequency: 4 Hz\n"))
	assert.NoError(err)
	assert.Nil(doc.State().Frequency)
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	var ioErr *ErrIO
	assert.True(errors.As(err, &ioErr))
	assert.ErrorIs(err, fs.ErrNotExist)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	assert.NoError(os.WriteFile(good, []byte(testYaml), 0o644))
	st := Load(good)
	assert.Equal("My Emulator GUI", st.Name)
	assert.Len(st.RegisterSets, 2)

	bad := filepath.Join(dir, "bad.yaml")
	assert.NoError(os.WriteFile(bad, []byte("Name: [unterminated"), 0o644))
	st = Load(bad)
	assert.Equal(emulator.DEFAULT_NAME, st.Name)
	assert.Empty(st.RegisterSets)

	st = Load(filepath.Join(dir, "missing.yaml"))
	assert.Equal(emulator.DEFAULT_NAME, st.Name)
}

func TestEvalExpression(t *testing.T) {
	assert := assert.New(t)

	value, err := evalExpression("(3 + 4) * 2")
	assert.NoError(err)
	assert.Equal(uint64(14), value)

	_, err = evalExpression("-1")
	assert.Equal(ErrExpression("-1"), err)

	_, err = evalExpression("1.5")
	assert.Equal(ErrExpression("1.5"), err)
}
