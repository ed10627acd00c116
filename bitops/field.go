package bitops

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// Field describes a contiguous run of Len bits starting at bit Pos.
//
// Both mask flavours come from the descriptor: Mask is the in-place mask
// (the field's bits where they sit in the register) and ValueMask is the
// right-aligned pattern the field's values are drawn from.
type Field[T Unsigned] struct {
	Pos uint
	Len uint
}

// NewField returns the field at pos of length bits, checking that it lies
// inside T.
func NewField[T Unsigned](pos, length uint) (Field[T], error) {
	if length == 0 {
		return Field[T]{}, errors.New("field length must be positive")
	}
	if w := Width[T](); pos >= w || length > w-pos {
		return Field[T]{}, errors.Wrapf(ErrPosOutOfRange, "field at %d len %d exceeds width %d", pos, length, w)
	}
	return Field[T]{Pos: pos, Len: length}, nil
}

// FieldFromMask recovers the descriptor of an in-place mask such as 0x0C.
func FieldFromMask[T Unsigned](mask T) (Field[T], error) {
	if err := CheckContiguous(mask); err != nil {
		return Field[T]{}, err
	}
	m := uint64(mask)
	return Field[T]{
		Pos: uint(bits.TrailingZeros64(m)),
		Len: uint(bits.OnesCount64(m)),
	}, nil
}

// Mask returns the in-place mask of f.
func (f Field[T]) Mask() T {
	return Ones[T](f.Len) << f.Pos
}

// ValueMask returns the right-aligned mask of f.
func (f Field[T]) ValueMask() T {
	return Ones[T](f.Len)
}

// Fits reports whether v can be stored in f.
func (f Field[T]) Fits(v T) bool {
	return v&^f.ValueMask() == 0
}

// Shift moves v into the position of f without touching any register.
func (f Field[T]) Shift(v T) T {
	return v << f.Pos
}

// Get returns the right-aligned value of f in reg.
func (f Field[T]) Get(reg T) T {
	return GetField(reg, f.ValueMask(), f.Pos)
}

// Set returns reg with f replaced by v. v must fit in f.
func (f Field[T]) Set(reg, v T) T {
	return ReplaceField(reg, v, f.Pos, f.Len)
}

// Clear returns reg with every bit of f cleared.
func (f Field[T]) Clear(reg T) T {
	return ClearField(reg, f.ValueMask(), f.Pos)
}

// Overlaps reports whether f and g share any bit.
func (f Field[T]) Overlaps(g Field[T]) bool {
	return f.Mask()&g.Mask() != 0
}

func (f Field[T]) String() string {
	if f.Len == 1 {
		return fmt.Sprintf("[%d]", f.Pos)
	}
	return fmt.Sprintf("[%d:%d]", f.Pos+f.Len-1, f.Pos)
}
