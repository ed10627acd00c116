// Command regdecode decodes and encodes register values against a register
// map: one of the built-in maps or a YAML file.
//
// Usage:
//
//	regdecode [flags] value...
//
// Examples:
//
//	# Decode an IMU control register value
//	regdecode -reg CONTROL 0x1e
//
//	# Set the accelerometer to high resolution starting from 0x02
//	regdecode -reg CONTROL -set ACC_STATE=HIRES 0x02
//
//	# Read and update CTRL_MEAS of a BMP280 on I2C bus 1
//	regdecode -device bmp280 -reg CTRL_MEAS -i2c 1 -addr 0x76 -set MODE=NORMAL
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/all" // Empty import needed to initialize embd library.
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/westphae/regbits/bmp280"
	"github.com/westphae/regbits/regio"
	"github.com/westphae/regbits/regmap"
	"github.com/westphae/regbits/sensor"
)

var builtins = map[string]func() *regmap.Map{
	"imu":    sensor.Map,
	"bmp280": bmp280.Map,
}

// openBus opens I2C bus n; tests replace it.
var openBus = func(n byte) (regio.Bus, func() error) {
	bus := embd.NewI2CBus(n)
	return bus, bus.Close
}

type settings map[string]string

func (s settings) String() string {
	parts := make([]string, 0, len(s))
	for k, v := range s {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (s settings) Set(arg string) error {
	k, v, ok := strings.Cut(arg, "=")
	if !ok || k == "" || v == "" {
		return errors.Errorf("expected FIELD=VALUE, got %q", arg)
	}
	s[k] = v
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Cause(err) == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var (
		mapFile = ""
		device  = "imu"
		regName = "CONTROL"
		i2c     = -1
		addr    = uint(0x68)
		verbose = false
		set     = make(settings)
	)

	fs := flag.NewFlagSet("regdecode", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&mapFile, "map", mapFile, "YAML register map (overrides -device)")
	fs.StringVar(&device, "device", device, "built-in register map: imu or bmp280")
	fs.StringVar(&regName, "reg", regName, "register name")
	fs.IntVar(&i2c, "i2c", i2c, "I2C bus to read the register from; -1 to decode arguments only")
	fs.UintVar(&addr, "addr", addr, "I2C device address")
	fs.BoolVar(&verbose, "v", verbose, "debug logging")
	fs.Var(set, "set", "FIELD=VALUE to encode, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	m, err := loadMap(mapFile, device)
	if err != nil {
		return err
	}
	log.Debugf("register map %s: %d registers, width %d", m.Name, len(m.Registers), m.Width)

	reg, err := m.Register(regName)
	if err != nil {
		return err
	}

	if i2c > 255 {
		return errors.Errorf("I2C bus %d out of range", i2c)
	}
	if addr > 0x7F {
		return errors.Errorf("I2C address %#x is not a 7-bit address", addr)
	}
	if i2c >= 0 {
		return runDevice(out, reg, byte(i2c), byte(addr), set)
	}

	values := fs.Args()
	if len(values) == 0 {
		if len(set) == 0 {
			return errors.New("no register value given")
		}
		values = []string{"0"}
	}
	for _, s := range values {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing value %q", s)
		}
		if reg.Mask(v) != v {
			return errors.Errorf("value %s does not fit %d-bit register %s", s, reg.Width(), reg.Name)
		}
		if len(set) > 0 {
			if v, err = reg.Encode(v, set); err != nil {
				return err
			}
		}
		printRegister(out, reg, v)
	}
	return nil
}

func loadMap(mapFile, device string) (*regmap.Map, error) {
	if mapFile != "" {
		return regmap.LoadFile(mapFile)
	}
	build, ok := builtins[device]
	if !ok {
		return nil, errors.Errorf("unknown device %q", device)
	}
	return build(), nil
}

func runDevice(out io.Writer, reg *regmap.Register, n, addr byte, set settings) error {
	if reg.Width() != 8 || reg.Address > 0xFF {
		return errors.Errorf("%s: only 8-bit registers with 8-bit addresses can be accessed over I2C", reg.Name)
	}
	bus, closeBus := openBus(n)
	defer closeBus()
	dev := regio.NewDevice(bus, addr)
	log.Debugf("using %s on I2C bus %d", dev, n)

	var (
		v   byte
		err error
	)
	if len(set) == 0 {
		v, err = dev.Read(byte(reg.Address))
	} else {
		var encErr error
		v, err = dev.Update(byte(reg.Address), func(old byte) byte {
			nv, e := reg.Encode(uint64(old), set)
			if e != nil {
				encErr = e
				return old
			}
			return byte(nv)
		})
		if encErr != nil {
			return encErr
		}
	}
	if err != nil {
		return err
	}
	printRegister(out, reg, uint64(v))
	return nil
}

func printRegister(out io.Writer, reg *regmap.Register, v uint64) {
	digits := int(reg.Width() / 4)
	fmt.Fprintf(out, "%s (0x%02x) = 0x%0*x\n", reg.Name, reg.Address, digits, reg.Mask(v))
	for _, fv := range reg.Decode(v) {
		f := fv.Field
		fmt.Fprintf(out, "  %-12s %-7s = %d", f.Name, f.Bits(), fv.Code)
		if fv.Name != "" {
			fmt.Fprintf(out, " %s", fv.Name)
		}
		fmt.Fprintln(out)
	}
}
