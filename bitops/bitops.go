// Package bitops provides the bit and field operations used to build and
// inspect device register values.
//
// Every operation is a pure function over an unsigned integer of any width:
// it takes the current register value and returns the new one, leaving the
// caller to store it back. None of them validate their arguments. Out of
// range positions and values wider than their field are caller errors; see
// CheckPos, CheckFits and CheckContiguous for optional guards.
package bitops

import "math/bits"

// Unsigned is the set of register word types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the number of bits in T.
func Width[T Unsigned]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// Ones returns a right-aligned mask of length ones.
// A length of Width[T]() or more yields all ones.
func Ones[T Unsigned](length uint) T {
	if length >= Width[T]() {
		return ^T(0)
	}
	return T(1)<<length - 1
}

// Set sets every bit of mask in reg.
func Set[T Unsigned](reg, mask T) T {
	return reg | mask
}

// Clear clears every bit of mask in reg.
func Clear[T Unsigned](reg, mask T) T {
	return reg &^ mask
}

// Toggle inverts every bit of mask in reg.
func Toggle[T Unsigned](reg, mask T) T {
	return reg ^ mask
}

// Get returns the bits of reg selected by mask, in place.
// The result is not normalised to 0 or 1.
func Get[T Unsigned](reg, mask T) T {
	return reg & mask
}

// IsSet reports whether ANY bit of mask is set in reg.
//
// For a multi-bit mask this is not the negation of IsClear being false for
// all bits; use IsAllSet to ask whether the whole mask is set.
func IsSet[T Unsigned](reg, mask T) bool {
	return reg&mask != 0
}

// IsClear reports whether ALL bits of mask are clear in reg.
func IsClear[T Unsigned](reg, mask T) bool {
	return reg&mask == 0
}

// IsAllSet reports whether every bit of mask is set in reg.
func IsAllSet[T Unsigned](reg, mask T) bool {
	return reg&mask == mask
}

// SetBit sets bit pos of reg. pos must be less than Width[T]().
func SetBit[T Unsigned](reg T, pos uint) T {
	return reg | T(1)<<pos
}

// ClearBit clears bit pos of reg. pos must be less than Width[T]().
func ClearBit[T Unsigned](reg T, pos uint) T {
	return reg &^ (T(1) << pos)
}

// GetBit returns bit pos of reg as 0 or 1.
func GetBit[T Unsigned](reg T, pos uint) T {
	return reg >> pos & 1
}

// IsBitSet reports whether bit pos of reg is set.
func IsBitSet[T Unsigned](reg T, pos uint) bool {
	return reg&(T(1)<<pos) != 0
}

// IsBitClear reports whether bit pos of reg is clear.
func IsBitClear[T Unsigned](reg T, pos uint) bool {
	return reg&(T(1)<<pos) == 0
}

// SetField ORs the unshifted pattern mask into reg at pos.
// The caller guarantees mask<<pos fits in T.
func SetField[T Unsigned](reg, mask T, pos uint) T {
	return reg | mask<<pos
}

// ClearField clears the bits covered by the unshifted pattern mask at pos.
func ClearField[T Unsigned](reg, mask T, pos uint) T {
	return reg &^ (mask << pos)
}

// GetField extracts the field at pos and right-aligns it, keeping only the
// bits of the unshifted pattern mask.
func GetField[T Unsigned](reg, mask T, pos uint) T {
	return reg >> pos & mask
}

// ReplaceField clears the length bits of reg starting at pos and writes
// value into them. value must fit in length bits; wider values spill into
// the neighbouring bits.
func ReplaceField[T Unsigned](reg, value T, pos, length uint) T {
	return reg&^(Ones[T](length)<<pos) | value<<pos
}

// ReplaceMask clears the bits of the in-place mask and ORs in value.
// Unlike ReplaceField, value is not shifted: it must already sit inside mask.
func ReplaceMask[T Unsigned](reg, mask, value T) T {
	return reg&^mask | value
}
