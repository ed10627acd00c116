package bitops

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	assertion "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMasks(t *testing.T) {
	assert := assertion.New(t)

	tests := []struct {
		pos, length uint
		mask, vmask uint8
		str         string
	}{
		{0, 2, 0x03, 0x03, "[1:0]"},
		{2, 2, 0x0C, 0x03, "[3:2]"},
		{4, 2, 0x30, 0x03, "[5:4]"},
		{5, 3, 0xE0, 0x07, "[7:5]"},
		{7, 1, 0x80, 0x01, "[7]"},
		{0, 8, 0xFF, 0xFF, "[7:0]"},
	}
	for _, tc := range tests {
		f, err := NewField[uint8](tc.pos, tc.length)
		require.NoError(t, err)
		assert.Equal(tc.mask, f.Mask(), "field %s", f)
		assert.Equal(tc.vmask, f.ValueMask(), "field %s", f)
		assert.Equal(tc.str, f.String())
		assert.Equal(((uint8(1)<<tc.length)-1)<<tc.pos, f.Mask())

		back, err := FieldFromMask(tc.mask)
		require.NoError(t, err)
		assert.Equal(f, back)
	}
}

func TestNewFieldBounds(t *testing.T) {
	assert := assertion.New(t)

	_, err := NewField[uint8](6, 3)
	assert.Equal(ErrPosOutOfRange, errors.Cause(err))

	_, err = NewField[uint16](3, 0)
	assert.Error(err)

	// pos+length would wrap around uint.
	_, err = NewField[uint8](math.MaxUint, 2)
	assert.Equal(ErrPosOutOfRange, errors.Cause(err))
	_, err = NewField[uint64](2, math.MaxUint)
	assert.Equal(ErrPosOutOfRange, errors.Cause(err))
	_, err = NewField[uint8](8, 1)
	assert.Equal(ErrPosOutOfRange, errors.Cause(err))

	f, err := NewField[uint64](48, 16)
	assert.NoError(err)
	assert.Equal(uint64(0xFFFF)<<48, f.Mask())
}

func TestFieldGetSet(t *testing.T) {
	assert := assertion.New(t)

	acc := Field[uint8]{Pos: 2, Len: 2}
	reg := uint8(0xFF)

	reg = acc.Set(reg, 0b01)
	assert.Equal(uint8(0xF7), reg)
	assert.Equal(uint8(0b01), acc.Get(reg))

	reg = acc.Clear(reg)
	assert.Equal(uint8(0xF3), reg)
	assert.Zero(acc.Get(reg))

	assert.Equal(uint8(0x0C), acc.Shift(0b11))
	assert.True(acc.Fits(0b11))
	assert.False(acc.Fits(0b100))
}

func TestFieldOverlaps(t *testing.T) {
	assert := assertion.New(t)

	gyro := Field[uint8]{Pos: 0, Len: 2}
	acc := Field[uint8]{Pos: 2, Len: 2}
	wide := Field[uint8]{Pos: 1, Len: 3}

	assert.False(gyro.Overlaps(acc))
	assert.True(gyro.Overlaps(wide))
	assert.True(acc.Overlaps(wide))
}

func TestFieldFromMaskRejects(t *testing.T) {
	assert := assertion.New(t)

	for _, m := range []uint16{0x0000, 0x0005, 0x8001, 0x0F0F} {
		_, err := FieldFromMask(m)
		assert.Equal(ErrMaskNotContiguous, errors.Cause(err), "mask %#x", m)
	}
}
