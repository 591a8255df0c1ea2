// Package i2cdev opens a host I2C bus (Linux /dev/i2c-N and friends) through
// periph.io for use with tinygo.org/x/drivers style device drivers.
package i2cdev

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

var hostInit = sync.OnceValue(func() error {
	_, err := host.Init()
	return err
})

// Bus is an open host I2C bus. It satisfies drivers.I2C.
type Bus struct {
	i2c.BusCloser
}

// Open initializes the host drivers and opens the named bus. An empty name
// opens the first bus found. A non-zero speed sets the SCL frequency.
func Open(name string, speed physic.Frequency) (*Bus, error) {
	if err := hostInit(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	bc, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", name, err)
	}

	if speed > 0 {
		if err = bc.SetSpeed(speed); err != nil {
			return nil, multierr.Combine(fmt.Errorf("set i2c speed %s: %w", speed, err), bc.Close())
		}
	}

	return &Bus{BusCloser: bc}, nil
}

// Wrap adapts an already opened periph bus.
func Wrap(bc i2c.BusCloser) *Bus {
	return &Bus{BusCloser: bc}
}

// Tx writes w to addr and reads len(r) bytes back with a repeated start.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if err := b.BusCloser.Tx(addr, w, r); err != nil {
		return fmt.Errorf("%s: tx 0x%02X: %w", b.BusCloser, addr, err)
	}
	return nil
}

// Buses lists the names of the I2C buses registered on this host.
func Buses() ([]string, error) {
	if err := hostInit(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	refs := i2creg.All()
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names, nil
}
