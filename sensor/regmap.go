package sensor

import (
	"github.com/westphae/regbits/bitops"
	"github.com/westphae/regbits/regmap"
)

var stateValues = map[string]uint64{
	StateOff.String():   uint64(StateOff),
	StateSleep.String(): uint64(StateSleep),
	StateOn.String():    uint64(StateOn),
	StateHiRes.String(): uint64(StateHiRes),
}

func stateField(name string, f bitops.Field[uint8], doc string) *regmap.Field {
	values := make(map[string]uint64, len(stateValues))
	for k, v := range stateValues {
		values[k] = v
	}
	return &regmap.Field{Name: name, Pos: f.Pos, Len: f.Len, Doc: doc, Values: values}
}

var registerDocs = [numRegisters]string{
	"device identification",
	"device control",
	"gyroscope X, roll",
	"gyroscope Y, pitch",
	"gyroscope Z, yaw",
	"accelerometer X, roll",
	"accelerometer Y, pitch",
	"accelerometer Z, yaw",
	"magnetometer X, roll",
	"magnetometer Y, pitch",
	"magnetometer Z, yaw",
	"sensor temperature",
}

// Map returns the catalog as a register map, so that tools can treat it
// the same way as maps loaded from YAML.
func Map() *regmap.Map {
	m := &regmap.Map{Name: "imu", Width: 8}
	for _, r := range Registers() {
		reg := &regmap.Register{Name: r.String(), Address: uint16(r), Doc: registerDocs[r]}
		if r == ControlReg {
			reg.Fields = []*regmap.Field{
				stateField("GYRO_STATE", GyroState, "gyroscope operating mode"),
				stateField("ACC_STATE", AccState, "accelerometer operating mode"),
				stateField("MAG_STATE", MagState, "magnetometer operating mode"),
			}
		}
		m.Registers = append(m.Registers, reg)
	}
	if err := m.Validate(); err != nil {
		panic(err)
	}
	return m
}
