package regio

import "github.com/pkg/errors"

// MemBus is an in-memory register bank that satisfies Bus. It is meant for
// tests and dry runs and is not safe for concurrent use.
type MemBus struct {
	regs   map[uint16]byte
	Writes int   // number of register writes seen
	Err    error // if set, every access fails with Err
}

// NewMemBus returns an empty bank; unwritten registers read as zero.
func NewMemBus() *MemBus {
	return &MemBus{regs: make(map[uint16]byte)}
}

func key(addr, reg byte) uint16 {
	return uint16(addr)<<8 | uint16(reg)
}

// ReadByteFromReg returns the value stored at reg of device addr, zero if
// it was never written.
func (b *MemBus) ReadByteFromReg(addr, reg byte) (byte, error) {
	if b.Err != nil {
		return 0, errors.WithStack(b.Err)
	}
	return b.regs[key(addr, reg)], nil
}

// WriteByteToReg stores value at reg of device addr and counts the write.
func (b *MemBus) WriteByteToReg(addr, reg, value byte) error {
	if b.Err != nil {
		return errors.WithStack(b.Err)
	}
	b.Writes++
	b.regs[key(addr, reg)] = value
	return nil
}

// Peek returns a register value without counting as bus traffic.
func (b *MemBus) Peek(addr, reg byte) byte {
	return b.regs[key(addr, reg)]
}

// Poke sets a register value without counting as bus traffic.
func (b *MemBus) Poke(addr, reg, value byte) {
	b.regs[key(addr, reg)] = value
}
