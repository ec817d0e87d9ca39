// Package config loads the initial emulator state from a YAML document.
//
// Loading is best-effort: any failure is logged and an empty state is used.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/emuview/emulator"
	"github.com/ezrec/emuview/framebuffer"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

const (
	DEFAULT_BIT_WIDTH = 32 // Width of registers that do not name one.
)

// Document is the configuration file layout.
type Document struct {
	Name           string                              `yaml:"Name"`
	ClockFrequency string                              `yaml:"ClockFrequency"`
	Registers      map[string]map[string]RegisterValue `yaml:"Registers"`
	Instructions   yaml.Node                           `yaml:"Instructions"` // Not used.
	FrameBuffer    *FrameBufferSize                    `yaml:"FrameBuffer"`
}

// FrameBufferSize is the geometry of the optional frame buffer.
type FrameBufferSize struct {
	Width  int `yaml:"Width"`
	Height int `yaml:"Height"`
}

// RegisterValue is the initial content of one register. In YAML it is an
// integer, an integer expression string, or a mapping with Value, Width
// and Format keys.
type RegisterValue struct {
	Value  uint64
	Width  int
	Format register.DisplayFormat
}

type registerMapping struct {
	Value  yaml.Node `yaml:"Value"`
	Width  int       `yaml:"Width"`
	Format string    `yaml:"Format"`
}

func scalarValue(node *yaml.Node) (value uint64, err error) {
	if node.Kind != yaml.ScalarNode {
		err = ErrExpression(node.Value)
		return
	}

	switch node.Tag {
	case "!!null":
		return
	case "!!int":
		err = node.Decode(&value)
		return
	}

	return evalExpression(node.Value)
}

// UnmarshalYAML decodes any of the three register value forms.
func (rv *RegisterValue) UnmarshalYAML(node *yaml.Node) (err error) {
	*rv = RegisterValue{Width: DEFAULT_BIT_WIDTH, Format: register.FORMAT_HEX}

	if node.Kind != yaml.MappingNode {
		rv.Value, err = scalarValue(node)
		return
	}

	var mapping registerMapping
	err = node.Decode(&mapping)
	if err != nil {
		return
	}

	if mapping.Value.Kind != 0 {
		rv.Value, err = scalarValue(&mapping.Value)
		if err != nil {
			return
		}
	}

	if mapping.Width != 0 {
		rv.Width = mapping.Width
	}

	if mapping.Format != "" {
		rv.Format, err = register.ParseDisplayFormat(mapping.Format)
	}

	return
}

// Parse decodes a configuration document.
func Parse(data []byte) (doc *Document, err error) {
	doc = &Document{}
	err = yaml.Unmarshal(data, doc)
	if err != nil {
		doc = nil
		err = &ErrParse{Err: err}
	}
	return
}

// Read reads and decodes a configuration file.
func Read(path string) (doc *Document, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrIO{Path: path, Err: err}
		return
	}

	return Parse(data)
}

// State builds the emulator state described by the document. An unparsable
// clock frequency leaves the frequency unset.
func (doc *Document) State() (st *emulator.State) {
	name := doc.Name
	if name == "" {
		name = emulator.DEFAULT_NAME
	}
	st = emulator.NewState(name)

	if freq, ok := frequency.Parse(doc.ClockFrequency); ok {
		st.Frequency = &freq
	} else if doc.ClockFrequency != "" {
		log.Printf("config: ignoring clock frequency '%v'", doc.ClockFrequency)
	}

	for group, values := range doc.Registers {
		set := register.NewSet()
		for name, rv := range values {
			width := rv.Width
			if width == 0 {
				width = DEFAULT_BIT_WIDTH
			}
			set.Add(name, register.NewRegister(rv.Value, rv.Format, width))
		}
		st.RegisterSets[group] = set
	}

	if doc.FrameBuffer != nil {
		st.FrameBuffer = framebuffer.New(doc.FrameBuffer.Width, doc.FrameBuffer.Height)
	}

	return
}

// Load builds the state from the file at path. On any failure the error
// is logged and an empty state is returned.
func Load(path string) (st *emulator.State) {
	doc, err := Read(path)
	if err != nil {
		log.Printf("config: %v", err)
		log.Printf("config: starting with an empty state")
		return emulator.NewState(emulator.DEFAULT_NAME)
	}

	return doc.State()
}
