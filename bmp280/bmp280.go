/*
Register layout of the Bosch BMP280 pressure sensor.
Reference: https://github.com/BoschSensortec/BMP280_driver
*/

// Package bmp280 describes the control and configuration registers of the
// BMP280 and packs and unpacks their fields.
package bmp280

import (
	"time"

	"github.com/westphae/regbits/bitops"
	"github.com/westphae/regbits/regmap"
)

// Settings are the user-selectable fields of the control and config registers.
// See BMP280 datasheet for details.
type Settings struct {
	PowerMode     byte // bmp280.SleepMode, ForcedMode or NormalMode
	Standby       byte // one of the bmp280.StandbyTimeX
	Filter        byte // one of the bmp280.FilterCoeffX
	OversampTemp  byte // one of the bmp280.OversampX
	OversampPress byte // one of the bmp280.OversampX
}

// Control returns the ctrl_meas register value for s.
func (s Settings) Control() byte {
	var r bitops.Register[uint8]
	r.SetField(OversampTemp, s.OversampTemp)
	r.SetField(OversampPress, s.OversampPress)
	r.SetField(PowerMode, s.PowerMode)
	return r.Get()
}

// Config returns the config register value for s, with 3-wire SPI off.
func (s Settings) Config() byte {
	var r bitops.Register[uint8]
	r.SetField(StandbyTime, s.Standby)
	r.SetField(FilterCoeff, s.Filter)
	return r.Get()
}

// DecodeSettings unpacks the control and config register values.
func DecodeSettings(control, config byte) Settings {
	return Settings{
		PowerMode:     PowerMode.Get(control),
		Standby:       StandbyTime.Get(config),
		Filter:        FilterCoeff.Get(config),
		OversampTemp:  OversampTemp.Get(control),
		OversampPress: OversampPress.Get(control),
	}
}

// StandbyDelay returns the time between measurements in normal mode for
// a standby setting. Only the low three bits of standby are used.
func StandbyDelay(standby byte) (delay time.Duration) {
	standby &= StandbyTime.ValueMask()
	if standby == 0 {
		delay = 500 * time.Microsecond
	} else if standby == 1 {
		delay = 62500 * time.Microsecond
	} else {
		delay = time.Duration(int(4000)>>uint(7-standby)) * time.Millisecond
	}
	return
}

// Measuring reports whether a conversion is running, from the status register.
func Measuring(status byte) bool {
	return bitops.IsSet(status, StatusMeasuring)
}

var (
	powerModes = map[string]uint64{"SLEEP": SleepMode, "FORCED": ForcedMode, "NORMAL": NormalMode}
	oversamps  = map[string]uint64{
		"SKIPPED": OversampSkipped, "X1": Oversamp1x, "X2": Oversamp2x,
		"X4": Oversamp4x, "X8": Oversamp8x, "X16": Oversamp16x,
	}
	filters = map[string]uint64{
		"OFF": FilterCoeffOff, "X2": FilterCoeff2, "X4": FilterCoeff4,
		"X8": FilterCoeff8, "X16": FilterCoeff16,
	}
	standbys = map[string]uint64{
		"0.5MS": StandbyTime1ms, "62.5MS": StandbyTime63ms, "125MS": StandbyTime125ms,
		"250MS": StandbyTime250ms, "500MS": StandbyTime500ms, "1000MS": StandbyTime1000ms,
		"2000MS": StandbyTime2000ms, "4000MS": StandbyTime4000ms,
	}
)

func field(name string, f bitops.Field[uint8], values map[string]uint64) *regmap.Field {
	return &regmap.Field{Name: name, Pos: f.Pos, Len: f.Len, Values: values}
}

// Map returns the BMP280 register map.
func Map() *regmap.Map {
	m := &regmap.Map{
		Name:  "bmp280",
		Width: 8,
		Registers: []*regmap.Register{
			{Name: "CHIP_ID", Address: RegisterChipID, Doc: "chip identification"},
			{Name: "RESET", Address: RegisterSoftReset, Doc: "write 0xB6 to reset"},
			{Name: "STATUS", Address: RegisterStatus, Fields: []*regmap.Field{
				{Name: "MEASURING", Pos: 3, Len: 1},
				{Name: "IM_UPDATE", Pos: 0, Len: 1},
			}},
			{Name: "CTRL_MEAS", Address: RegisterControl, Fields: []*regmap.Field{
				field("OSRS_T", OversampTemp, oversamps),
				field("OSRS_P", OversampPress, oversamps),
				field("MODE", PowerMode, powerModes),
			}},
			{Name: "CONFIG", Address: RegisterConfig, Fields: []*regmap.Field{
				field("T_SB", StandbyTime, standbys),
				field("FILTER", FilterCoeff, filters),
				field("SPI3W_EN", SPI3Wire, nil),
			}},
		},
	}
	if err := m.Validate(); err != nil {
		panic(err)
	}
	return m
}
