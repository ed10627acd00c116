package bitops

import (
	"math/bits"

	"github.com/pkg/errors"
)

var (
	ErrPosOutOfRange     = errors.New("bit position out of range")
	ErrValueOverflow     = errors.New("value does not fit in field")
	ErrMaskNotContiguous = errors.New("mask is not a contiguous run of bits")
)

// CheckPos returns ErrPosOutOfRange if pos is not a valid bit index of T.
func CheckPos[T Unsigned](pos uint) error {
	if w := Width[T](); pos >= w {
		return errors.Wrapf(ErrPosOutOfRange, "position %d, width %d", pos, w)
	}
	return nil
}

// CheckFits returns ErrValueOverflow if value needs more than length bits.
func CheckFits[T Unsigned](value T, length uint) error {
	if value&^Ones[T](length) != 0 {
		return errors.Wrapf(ErrValueOverflow, "value %#x, length %d", uint64(value), length)
	}
	return nil
}

// CheckContiguous returns ErrMaskNotContiguous unless mask is a single
// non-empty run of set bits.
func CheckContiguous[T Unsigned](mask T) error {
	if mask == 0 {
		return errors.Wrap(ErrMaskNotContiguous, "empty mask")
	}
	m := uint64(mask)
	pos := uint(bits.TrailingZeros64(m))
	n := uint(bits.OnesCount64(m))
	if m>>pos != uint64(Ones[T](n)) {
		return errors.Wrapf(ErrMaskNotContiguous, "mask %#x", m)
	}
	return nil
}
