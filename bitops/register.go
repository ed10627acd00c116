package bitops

// Register holds one register value and mutates it in place.
// It has no locking; callers sharing a Register across goroutines must
// synchronise access themselves.
type Register[T Unsigned] struct {
	Reg T
}

// Get returns the current value.
func (r *Register[T]) Get() T {
	return r.Reg
}

// Store overwrites the whole value.
func (r *Register[T]) Store(value T) {
	r.Reg = value
}

// SetBits sets the bits of mask.
func (r *Register[T]) SetBits(mask T) {
	r.Reg = Set(r.Reg, mask)
}

// ClearBits clears the bits of mask.
func (r *Register[T]) ClearBits(mask T) {
	r.Reg = Clear(r.Reg, mask)
}

// ToggleBits inverts the bits of mask.
func (r *Register[T]) ToggleBits(mask T) {
	r.Reg = Toggle(r.Reg, mask)
}

// HasBits reports whether any bit of mask is set.
func (r *Register[T]) HasBits(mask T) bool {
	return IsSet(r.Reg, mask)
}

// SetBit sets bit pos.
func (r *Register[T]) SetBit(pos uint) {
	r.Reg = SetBit(r.Reg, pos)
}

// ClearBit clears bit pos.
func (r *Register[T]) ClearBit(pos uint) {
	r.Reg = ClearBit(r.Reg, pos)
}

// ReplaceBits clears the unshifted mask at pos and writes value there.
func (r *Register[T]) ReplaceBits(value, mask T, pos uint) {
	r.Reg = ClearField(r.Reg, mask, pos) | value<<pos
}

// ReplaceMask clears the in-place mask and ORs in the pre-shifted value.
func (r *Register[T]) ReplaceMask(mask, value T) {
	r.Reg = ReplaceMask(r.Reg, mask, value)
}

// GetField returns the right-aligned value of f.
func (r *Register[T]) GetField(f Field[T]) T {
	return f.Get(r.Reg)
}

// SetField replaces f with value.
func (r *Register[T]) SetField(f Field[T], value T) {
	r.Reg = f.Set(r.Reg, value)
}
