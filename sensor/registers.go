// Package sensor holds the register catalog of a multi-axis IMU: the
// register identifiers and the fields of its control register.
package sensor

import "fmt"

// Register identifies one IMU register. Identifiers are sequential from 0.
type Register uint8

const (
	WhoAmIReg  Register = iota // device identification
	ControlReg                 // device control
	GyroXReg                   // gyroscope X, roll
	GyroYReg                   // gyroscope Y, pitch
	GyroZReg                   // gyroscope Z, yaw
	AccXReg                    // accelerometer X, roll
	AccYReg                    // accelerometer Y, pitch
	AccZReg                    // accelerometer Z, yaw
	MagXReg                    // magnetometer X, roll
	MagYReg                    // magnetometer Y, pitch
	MagZReg                    // magnetometer Z, yaw
	TempReg                    // sensor temperature
	numRegisters
)

var registerNames = [numRegisters]string{
	"WHO_AM_I", "CONTROL",
	"GYRO_X", "GYRO_Y", "GYRO_Z",
	"ACC_X", "ACC_Y", "ACC_Z",
	"MAG_X", "MAG_Y", "MAG_Z",
	"TEMP",
}

// Valid reports whether r names a register of the catalog.
func (r Register) Valid() bool {
	return r < numRegisters
}

func (r Register) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Register(%d)", uint8(r))
	}
	return registerNames[r]
}

// Registers returns every register in address order.
func Registers() []Register {
	regs := make([]Register, numRegisters)
	for i := range regs {
		regs[i] = Register(i)
	}
	return regs
}
