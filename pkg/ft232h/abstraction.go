package ft232h

import (
	"errors"
	"fmt"
	"io"

	"github.com/yunginnanet/ft232h"
)

// i2cPort is the part of the MPSSE I2C channel used by [FT232H.Tx].
type i2cPort interface {
	Write(addr uint, data []uint8, start bool, stop bool) (uint, error)
	Read(addr uint, count uint, start bool, stop bool) ([]uint8, error)
}

// FT232H represents an FT232H device driving an I2C bus.
type FT232H struct {
	*ft232h.FT232H
	port i2cPort
	info DeviceInfo
}

// Connect opens the FT232H matching choice (or the first one found when
// choice is empty) and initializes its I2C channel.
func Connect(choice ...Descriptor) (ft *FT232H, err error) {
	ft = &FT232H{}

	switch len(choice) {
	case 0:
		ft.FT232H, err = ft232h.New()
	case 1:
		if err = choice[0].Validate(); err != nil {
			return nil, ErrBadDescriptor
		}
		ft.FT232H, err = ft232h.OpenMask(choice[0].Mask())
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}
	if err != nil {
		return nil, err
	}

	if err = ft.FT232H.I2C.Init(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to init I2C: %w", err), ft.FT232H.Close())
	}
	ft.port = ft.FT232H.I2C
	ft.info = ft.Info()

	return ft, nil
}

// Info returns a snapshot of the device information for the FT232H device. Read-only.
func (ft *FT232H) Info() DeviceInfo {
	vid, pid := ft.vidPid()
	return DeviceInfo{
		Index:       ft.Index(),
		Serial:      ft.Serial(),
		Description: ft.Desc(),
		ProductID:   pid,
		VendorID:    vid,
		IsOpen:      ft.IsOpen(),
		IsHighSpeed: ft.IsHiSpeed(),
	}
}

// String returns a string representation of the FT232H device. It includes the vendor ID, product ID, and description.
func (ft *FT232H) String() string {
	return fmt.Sprintf("FT232H[%s:%s]: %s", ft.info.VendorID, ft.info.ProductID, ft.info.Description)
}

// Tx writes w to the device at addr and then, if r is non-empty, reads
// len(r) bytes back after a repeated start.
func (ft *FT232H) Tx(addr uint16, w, r []byte) error {
	return tx(ft.port, addr, w, r)
}

func tx(port i2cPort, addr uint16, w, r []byte) error {
	if len(w) == 0 && len(r) == 0 {
		return nil
	}

	if len(w) > 0 {
		n, err := port.Write(uint(addr), w, true, len(r) == 0)
		if err != nil {
			return fmt.Errorf("i2c write 0x%02X: %w", addr, err)
		}
		if int(n) != len(w) {
			return fmt.Errorf("i2c write 0x%02X: %w", addr, io.ErrShortWrite)
		}
	}

	if len(r) > 0 {
		b, err := port.Read(uint(addr), uint(len(r)), true, true)
		if err != nil {
			return fmt.Errorf("i2c read 0x%02X: %w", addr, err)
		}
		if copy(r, b) != len(r) {
			return fmt.Errorf("i2c read 0x%02X: %w", addr, io.ErrUnexpectedEOF)
		}
	}

	return nil
}

// Close releases the USB device.
func (ft *FT232H) Close() error {
	return ft.FT232H.Close()
}
