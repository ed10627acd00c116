package regmap

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/westphae/regbits/bitops"
)

// FieldValue is one decoded field of a register value.
type FieldValue struct {
	Field *Field
	Code  uint64
	Name  string // symbolic name of Code, empty if it has none
}

func (fv FieldValue) String() string {
	if fv.Name != "" {
		return fmt.Sprintf("%s=%s", fv.Field.Name, fv.Name)
	}
	return fmt.Sprintf("%s=%#x", fv.Field.Name, fv.Code)
}

// Mask returns the value of v restricted to the register width.
func (r *Register) Mask(v uint64) uint64 {
	return bitops.Get(v, bitops.Ones[uint64](r.Width()))
}

// Decode splits v into the fields of r, in declaration order.
// Bits not covered by any field are ignored.
func (r *Register) Decode(v uint64) []FieldValue {
	v = r.Mask(v)
	out := make([]FieldValue, 0, len(r.Fields))
	for _, f := range r.Fields {
		code := f.Bits().Get(v)
		name, _ := f.NameOf(code)
		out = append(out, FieldValue{Field: f, Code: code, Name: name})
	}
	return out
}

// Value resolves a field setting given either as a symbolic value name or
// as a number in any base strconv.ParseUint accepts with base 0.
func (f *Field) Value(s string) (uint64, error) {
	if code, ok := f.Values[s]; ok {
		return code, nil
	}
	code, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownValue, "%s: %q", f.Name, s)
	}
	if err := bitops.CheckFits(code, f.Len); err != nil {
		return 0, errors.Wrapf(err, "%s", f.Name)
	}
	return code, nil
}

// Set returns v with field name replaced by the setting s.
func (r *Register) Set(v uint64, name, s string) (uint64, error) {
	f, err := r.Field(name)
	if err != nil {
		return v, err
	}
	code, err := f.Value(s)
	if err != nil {
		return v, errors.Wrapf(err, "%s", r.Name)
	}
	return f.Bits().Set(r.Mask(v), code), nil
}

// Encode applies the settings, given as field name to setting, to base.
// Fields are applied in declaration order so the result does not depend on
// map iteration.
func (r *Register) Encode(base uint64, settings map[string]string) (uint64, error) {
	for name := range settings {
		if _, err := r.Field(name); err != nil {
			return base, err
		}
	}
	v := r.Mask(base)
	for _, f := range r.Fields {
		s, ok := settings[f.Name]
		if !ok {
			continue
		}
		var err error
		if v, err = r.Set(v, f.Name, s); err != nil {
			return base, err
		}
	}
	return v, nil
}
