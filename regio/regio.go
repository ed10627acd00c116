// Package regio applies bit and field updates to the registers of a device
// on an I2C bus with read-modify-write cycles.
//
// It does not synchronise access: two goroutines updating the same
// register must coordinate through the caller.
package regio

import (
	"fmt"

	"github.com/kidoman/embd"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/westphae/regbits/bitops"
)

// Bus is the part of embd.I2CBus needed for single register access.
type Bus interface {
	ReadByteFromReg(addr, reg byte) (byte, error)
	WriteByteToReg(addr, reg, value byte) error
}

var _ Bus = embd.I2CBus(nil)

// Device is a device at one address on a Bus.
type Device struct {
	bus     Bus
	Address byte
}

// NewDevice returns the device at address on bus.
func NewDevice(bus Bus, address byte) *Device {
	return &Device{bus: bus, Address: address}
}

func (d *Device) String() string {
	return fmt.Sprintf("device 0x%02x", d.Address)
}

// Read returns the value of reg.
func (d *Device) Read(reg byte) (byte, error) {
	v, err := d.bus.ReadByteFromReg(d.Address, reg)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: reading register 0x%02x", d, reg)
	}
	return v, nil
}

// Write stores value in reg.
func (d *Device) Write(reg, value byte) error {
	log.WithFields(log.Fields{
		"addr":  fmt.Sprintf("0x%02x", d.Address),
		"reg":   fmt.Sprintf("0x%02x", reg),
		"value": fmt.Sprintf("%#08b", value),
	}).Debug("register write")
	if err := d.bus.WriteByteToReg(d.Address, reg, value); err != nil {
		return errors.Wrapf(err, "%s: writing 0x%02x to register 0x%02x", d, value, reg)
	}
	return nil
}

// Update reads reg, passes the value through fn and writes the result back.
// The write is skipped when fn leaves the value unchanged.
func (d *Device) Update(reg byte, fn func(byte) byte) (byte, error) {
	old, err := d.Read(reg)
	if err != nil {
		return 0, err
	}
	v := fn(old)
	if v == old {
		return v, nil
	}
	return v, d.Write(reg, v)
}

// SetBits sets the bits of mask in reg.
func (d *Device) SetBits(reg, mask byte) error {
	_, err := d.Update(reg, func(v byte) byte { return bitops.Set(v, mask) })
	return err
}

// ClearBits clears the bits of mask in reg.
func (d *Device) ClearBits(reg, mask byte) error {
	_, err := d.Update(reg, func(v byte) byte { return bitops.Clear(v, mask) })
	return err
}

// HasBits reports whether any bit of mask is set in reg.
func (d *Device) HasBits(reg, mask byte) (bool, error) {
	v, err := d.Read(reg)
	if err != nil {
		return false, err
	}
	return bitops.IsSet(v, mask), nil
}

// GetField returns the right-aligned value of f in reg.
func (d *Device) GetField(reg byte, f bitops.Field[uint8]) (byte, error) {
	v, err := d.Read(reg)
	if err != nil {
		return 0, err
	}
	return f.Get(v), nil
}

// SetField replaces f in reg with value. Unlike the pure field operations
// it refuses values that do not fit, since a bad write reaches hardware.
func (d *Device) SetField(reg byte, f bitops.Field[uint8], value byte) error {
	if err := bitops.CheckFits(value, f.Len); err != nil {
		return errors.Wrapf(err, "%s: register 0x%02x field %s", d, reg, f)
	}
	_, err := d.Update(reg, func(v byte) byte { return f.Set(v, value) })
	return err
}
