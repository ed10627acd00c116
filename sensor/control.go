package sensor

import (
	"fmt"

	"github.com/westphae/regbits/bitops"
)

// Control register field layout. The _Msk constants are the in-place masks.
const (
	GyroStatePos = 0
	GyroStateMsk = 0x03
	GyroStateLen = 2

	AccStatePos = 2
	AccStateMsk = 0x0C
	AccStateLen = 2

	MagStatePos = 4
	MagStateMsk = 0x30
	MagStateLen = 2
)

// Control register fields.
var (
	GyroState = bitops.Field[uint8]{Pos: GyroStatePos, Len: GyroStateLen}
	AccState  = bitops.Field[uint8]{Pos: AccStatePos, Len: AccStateLen}
	MagState  = bitops.Field[uint8]{Pos: MagStatePos, Len: MagStateLen}
)

// State is the operating mode of one sensor, stored right-aligned.
// Shift it into place with the field before writing it to the register.
type State uint8

const (
	StateOff   State = 0b00 // shutdown
	StateSleep State = 0b01 // hibernate
	StateOn    State = 0b10 // normal active mode
	StateHiRes State = 0b11 // high sampling rate
)

const (
	GyroStateOff   = StateOff
	GyroStateSleep = StateSleep
	GyroStateOn    = StateOn
	GyroStateHiRes = StateHiRes

	AccStateOff   = StateOff
	AccStateSleep = StateSleep
	AccStateOn    = StateOn
	AccStateHiRes = StateHiRes

	MagStateOff   = StateOff
	MagStateSleep = StateSleep
	MagStateOn    = StateOn
	MagStateHiRes = StateHiRes
)

var stateNames = [...]string{"OFF", "SLEEP", "ON", "HIRES"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ControlState is the decoded content of the control register.
type ControlState struct {
	Gyro, Acc, Mag State
}

// DecodeControl splits a control register value into its sensor states.
// Bits outside the three state fields are ignored.
func DecodeControl(v uint8) ControlState {
	return ControlState{
		Gyro: State(GyroState.Get(v)),
		Acc:  State(AccState.Get(v)),
		Mag:  State(MagState.Get(v)),
	}
}

// Encode returns the control register value for c, with all other bits clear.
func (c ControlState) Encode() uint8 {
	return c.Apply(0)
}

// Apply writes c into the state fields of reg and keeps its other bits.
func (c ControlState) Apply(reg uint8) uint8 {
	reg = GyroState.Set(reg, uint8(c.Gyro))
	reg = AccState.Set(reg, uint8(c.Acc))
	return MagState.Set(reg, uint8(c.Mag))
}

func (c ControlState) String() string {
	return fmt.Sprintf("gyro=%s acc=%s mag=%s", c.Gyro, c.Acc, c.Mag)
}
