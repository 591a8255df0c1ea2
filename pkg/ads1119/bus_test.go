package ads1119

import (
	"errors"
	"sync"
	"time"

	"periph.io/x/conn/v3/i2c/i2ctest"
	"tinygo.org/x/drivers"
)

// Compile-time checks.
var (
	_ drivers.I2C = (*fakeBus)(nil)
	_ drivers.I2C = (*i2ctest.Playback)(nil)
)

var errBus = errors.New("bus: nack")

// fakeBus is a scripted ADS1119. DRDY sets after notReady status reads
// following each START; a negative notReady never sets it.
type fakeBus struct {
	mu sync.Mutex

	writes [][]byte

	failOn  byte // leading command byte to fail, 0 for none
	failErr error

	notReady    int
	statusReads int
	started     bool

	config byte
	data   [2]byte
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.writes = append(f.writes, append([]byte(nil), w...))

	if len(w) == 0 {
		return errors.New("fake: empty write")
	}
	if f.failOn != 0 && w[0] == f.failOn {
		return f.failErr
	}

	switch w[0] {
	case CMDRESET:
		f.config = ConfigDefault
		f.started = false
	case CMDWREG:
		f.config = w[1]
	case CMDSTARTSYNC:
		f.started = true
		f.statusReads = 0
	case CMDRREG: // CONFIG
		r[0] = f.config
	case CMDRREG | 0x04: // STATUS
		r[0] = 0x00
		if f.started && f.notReady >= 0 && f.statusReads >= f.notReady {
			r[0] = StatusDRDYbit
		}
		f.statusReads++
	case CMDRDATA:
		copy(r, f.data[:])
		f.started = false
	default:
		return errors.New("fake: unknown command")
	}
	return nil
}

// sent returns the leading byte of every write so far.
func (f *fakeBus) sent() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]byte, 0, len(f.writes))
	for _, w := range f.writes {
		out = append(out, w[0])
	}
	return out
}

func (f *fakeBus) sentCommand(cmd byte) bool {
	for _, b := range f.sent() {
		if b == cmd {
			return true
		}
	}
	return false
}

func noSleep(time.Duration) {}
