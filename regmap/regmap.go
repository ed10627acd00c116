// Package regmap describes the registers of a device and the bit fields
// inside them, loaded from YAML or built in code, and decodes and encodes
// register values against that description.
//
// A map looks like:
//
//	name: imu
//	width: 8
//	registers:
//	  - name: CONTROL
//	    address: 0x01
//	    fields:
//	      - name: GYRO_STATE
//	        pos: 0
//	        len: 2
//	        values: {OFF: 0, SLEEP: 1, ON: 2, HIRES: 3}
package regmap

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/westphae/regbits/bitops"
	"gopkg.in/yaml.v3"
)

// DefaultWidth is the register width used when a map does not give one.
const DefaultWidth = 8

var (
	ErrUnknownRegister = errors.New("unknown register")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownValue    = errors.New("unknown field value")
	ErrInvalidMap      = errors.New("invalid register map")
)

// Map is the register description of one device.
type Map struct {
	Name      string      `yaml:"name"`
	Width     uint        `yaml:"width,omitempty"`
	Registers []*Register `yaml:"registers"`
}

// Register is one addressable register.
type Register struct {
	Name    string   `yaml:"name"`
	Address uint16   `yaml:"address"`
	Doc     string   `yaml:"doc,omitempty"`
	Fields  []*Field `yaml:"fields,omitempty"`

	width uint
}

// Field is a bit field within a register. Values maps symbolic names to
// right-aligned codes.
type Field struct {
	Name   string            `yaml:"name"`
	Pos    uint              `yaml:"pos"`
	Len    uint              `yaml:"len"`
	Doc    string            `yaml:"doc,omitempty"`
	Values map[string]uint64 `yaml:"values,omitempty"`
}

// Load reads and validates a YAML register map.
func Load(r io.Reader) (*Map, error) {
	m := new(Map)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, errors.Wrap(err, "decoding register map")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads and validates the YAML register map at path.
func LoadFile(path string) (*Map, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening register map %s", path)
	}
	defer fd.Close()
	m, err := Load(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return m, nil
}

// Validate checks the map for consistency and fills in the default width.
// Registers must have unique names and addresses; fields must fit inside
// the register width, must not overlap, and their value codes must fit in
// the field. A map that fails validation is left unchanged.
func (m *Map) Validate() error {
	width := m.Width
	if width == 0 {
		width = DefaultWidth
	}
	switch width {
	case 8, 16, 32, 64:
	default:
		return errors.Wrapf(ErrInvalidMap, "%s: unsupported width %d", m.Name, width)
	}

	names := make(map[string]bool)
	addrs := make(map[uint16]string)
	for _, reg := range m.Registers {
		if reg.Name == "" {
			return errors.Wrapf(ErrInvalidMap, "%s: register at %#x has no name", m.Name, reg.Address)
		}
		if names[reg.Name] {
			return errors.Wrapf(ErrInvalidMap, "%s: duplicate register %s", m.Name, reg.Name)
		}
		if other, ok := addrs[reg.Address]; ok {
			return errors.Wrapf(ErrInvalidMap, "%s: registers %s and %s share address %#x",
				m.Name, other, reg.Name, reg.Address)
		}
		names[reg.Name] = true
		addrs[reg.Address] = reg.Name
		if err := reg.validate(width); err != nil {
			return errors.Wrapf(err, "%s", m.Name)
		}
	}

	m.Width = width
	for _, reg := range m.Registers {
		reg.width = width
	}
	return nil
}

func (r *Register) validate(width uint) error {
	var used uint64
	names := make(map[string]bool)
	for _, f := range r.Fields {
		if f.Name == "" || names[f.Name] {
			return errors.Wrapf(ErrInvalidMap, "%s: missing or duplicate field name %q", r.Name, f.Name)
		}
		names[f.Name] = true

		bf, err := bitops.NewField[uint64](f.Pos, f.Len)
		if err != nil || f.Pos >= width || f.Len > width-f.Pos {
			return errors.Wrapf(ErrInvalidMap, "%s.%s: field at pos %d len %d does not fit %d bits",
				r.Name, f.Name, f.Pos, f.Len, width)
		}
		if bitops.IsSet(used, bf.Mask()) {
			return errors.Wrapf(ErrInvalidMap, "%s.%s: field %s overlaps another field",
				r.Name, f.Name, bf)
		}
		used = bitops.Set(used, bf.Mask())

		codes := make(map[uint64]string)
		for name, code := range f.Values {
			if err := bitops.CheckFits(code, f.Len); err != nil {
				return errors.Wrapf(ErrInvalidMap, "%s.%s: value %s: %v", r.Name, f.Name, name, err)
			}
			if other, ok := codes[code]; ok {
				return errors.Wrapf(ErrInvalidMap, "%s.%s: values %s and %s share code %d",
					r.Name, f.Name, other, name, code)
			}
			codes[code] = name
		}
	}
	return nil
}

// Register returns the register called name.
func (m *Map) Register(name string) (*Register, error) {
	for _, reg := range m.Registers {
		if reg.Name == name {
			return reg, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownRegister, "%s", name)
}

// RegisterAt returns the register at addr.
func (m *Map) RegisterAt(addr uint16) (*Register, error) {
	for _, reg := range m.Registers {
		if reg.Address == addr {
			return reg, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownRegister, "address %#x", addr)
}

// Width returns the register width in bits.
func (r *Register) Width() uint {
	if r.width == 0 {
		return DefaultWidth
	}
	return r.width
}

// Field returns the field called name.
func (r *Register) Field(name string) (*Field, error) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownField, "%s.%s", r.Name, name)
}

// Bits returns the descriptor of f on a 64-bit word.
func (f *Field) Bits() bitops.Field[uint64] {
	return bitops.Field[uint64]{Pos: f.Pos, Len: f.Len}
}

// NameOf returns the symbolic name of code, if it has one.
func (f *Field) NameOf(code uint64) (string, bool) {
	for name, c := range f.Values {
		if c == code {
			return name, true
		}
	}
	return "", false
}

// ValueNames returns the symbolic value names of f ordered by code.
func (f *Field) ValueNames() []string {
	names := make([]string, 0, len(f.Values))
	for name := range f.Values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return f.Values[names[i]] < f.Values[names[j]]
	})
	return names
}
