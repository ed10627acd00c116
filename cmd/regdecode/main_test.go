package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	assertion "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westphae/regbits/bmp280"
	"github.com/westphae/regbits/regio"
	"github.com/westphae/regbits/regmap"
)

func runString(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(args, &buf)
	return buf.String(), err
}

func TestDecodeBuiltin(t *testing.T) {
	out, err := runString(t, "0x1e")
	require.NoError(t, err)
	assertion.Equal(t, "CONTROL (0x01) = 0x1e\n"+
		"  GYRO_STATE   [1:0]   = 2 ON\n"+
		"  ACC_STATE    [3:2]   = 3 HIRES\n"+
		"  MAG_STATE    [5:4]   = 1 SLEEP\n", out)
}

func TestEncode(t *testing.T) {
	assert := assertion.New(t)

	out, err := runString(t, "-set", "ACC_STATE=HIRES", "0x02")
	require.NoError(t, err)
	assert.Contains(out, "CONTROL (0x01) = 0x0e\n")

	out, err = runString(t, "-set", "GYRO_STATE=ON", "-set", "ACC_STATE=3")
	require.NoError(t, err)
	assert.Contains(out, "= 0x0e\n")

	_, err = runString(t, "-set", "ACC_STATE=TURBO", "0")
	assert.Equal(regmap.ErrUnknownValue, errors.Cause(err))

	_, err = runString(t, "-set", "ACC_STATE")
	assert.Error(err)
}

func TestErrors(t *testing.T) {
	assert := assertion.New(t)

	_, err := runString(t)
	assert.Error(err)

	_, err = runString(t, "-reg", "NOPE", "1")
	assert.Equal(regmap.ErrUnknownRegister, errors.Cause(err))

	_, err = runString(t, "-device", "nope", "1")
	assert.Error(err)

	_, err = runString(t, "zz")
	assert.Error(err)

	// CONTROL is 8 bits wide; wider values are refused rather than truncated.
	out, err := runString(t, "0x1ff")
	assert.Error(err)
	assert.Empty(out)
	_, err = runString(t, "-set", "GYRO_STATE=ON", "0x100")
	assert.Error(err)
}

func TestMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: dev
width: 16
registers:
  - name: CFG
    address: 0x20
    fields:
      - {name: RATE, pos: 8, len: 4, values: {SLOW: 1, FAST: 8}}
      - {name: EN, pos: 0, len: 1}
`), 0644))

	out, err := runString(t, "-map", path, "-reg", "CFG", "0x0801")
	require.NoError(t, err)
	assertion.Equal(t, "CFG (0x20) = 0x0801\n"+
		"  RATE         [11:8]  = 8 FAST\n"+
		"  EN           [0]     = 1\n", out)
}

func TestDevice(t *testing.T) {
	assert := assertion.New(t)

	bus := regio.NewMemBus()
	bus.Poke(bmp280.Address1, bmp280.RegisterControl, 0x54)
	saved := openBus
	openBus = func(n byte) (regio.Bus, func() error) {
		return bus, func() error { return nil }
	}
	defer func() { openBus = saved }()

	out, err := runString(t, "-device", "bmp280", "-reg", "CTRL_MEAS", "-i2c", "1", "-addr", "0x76")
	require.NoError(t, err)
	assert.Contains(out, "MODE         [1:0]   = 0 SLEEP")
	assert.Zero(bus.Writes)

	out, err = runString(t, "-device", "bmp280", "-reg", "CTRL_MEAS", "-i2c", "1", "-addr", "0x76", "-set", "MODE=NORMAL")
	require.NoError(t, err)
	assert.Contains(out, "CTRL_MEAS (0xf4) = 0x57")
	assert.Equal(byte(0x57), bus.Peek(bmp280.Address1, bmp280.RegisterControl))
	assert.Equal(1, bus.Writes)

	_, err = runString(t, "-device", "bmp280", "-reg", "CTRL_MEAS", "-i2c", "1", "-addr", "0x76", "-set", "MODE=2x")
	assert.Equal(regmap.ErrUnknownValue, errors.Cause(err))
	assert.Equal(1, bus.Writes)

	// Bus numbers and addresses are not truncated to a byte.
	opened := false
	openBus = func(n byte) (regio.Bus, func() error) {
		opened = true
		return bus, func() error { return nil }
	}
	_, err = runString(t, "-device", "bmp280", "-reg", "CTRL_MEAS", "-i2c", "257", "-addr", "0x76", "-set", "MODE=SLEEP")
	assert.Error(err)
	_, err = runString(t, "-device", "bmp280", "-reg", "CTRL_MEAS", "-i2c", "1", "-addr", "0x176", "-set", "MODE=SLEEP")
	assert.Error(err)
	assert.False(opened)
	assert.Equal(1, bus.Writes)
	assert.Equal(byte(0x57), bus.Peek(bmp280.Address1, bmp280.RegisterControl))
}
