package ads1119

import (
	"github.com/rs/zerolog"
	"tinygo.org/x/drivers"
)

// State is the phase of the one-shot acquisition in progress.
//
//	Idle -> ConfiguringInput -> Started -> AwaitingReady -> Reading -> Done
//
// Any bus failure moves to Failed. A new SelectInputAndStart or a Reset
// begins again from Idle.
type State uint8

const (
	StateIdle State = iota
	StateConfiguringInput
	StateStarted
	StateAwaitingReady
	StateReading
	StateDone
	StateFailed
)

func (st State) String() string {
	switch st {
	case StateIdle:
		return "idle"
	case StateConfiguringInput:
		return "configuring-input"
	case StateStarted:
		return "started"
	case StateAwaitingReady:
		return "awaiting-ready"
	case StateReading:
		return "reading"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "(invalid state)"
	}
}

// Sequencer drives the device through a single one-shot conversion. It keeps
// no chip state besides the phase of the current acquisition; every query is
// a fresh bus transaction.
//
// Ordering is not enforced: ReadResult before DRDY returns whatever the
// device reports, as the device itself has no interlock.
type Sequencer struct {
	bus     drivers.I2C
	address uint16
	state   State
	log     zerolog.Logger
}

// NewSequencer returns a Sequencer talking to the device at address.
func NewSequencer(bus drivers.I2C, address uint16, log zerolog.Logger) *Sequencer {
	return &Sequencer{
		bus:     bus,
		address: address,
		log:     log,
	}
}

// State returns the phase reached by the most recent operation.
func (s *Sequencer) State() State {
	return s.state
}

func (s *Sequencer) to(next State) {
	s.log.Trace().
		Stringer("from", s.state).
		Stringer("state", next).
		Msg("ads1119 transition")
	s.state = next
}

func (s *Sequencer) fail(err error) error {
	s.to(StateFailed)
	return err
}

// SelectInputAndStart writes CONFIG for ch and issues START/SYNC. START is
// not sent if the CONFIG write fails. Bytes already sent are not rolled back.
func (s *Sequencer) SelectInputAndStart(ch Channel) error {
	if !ch.Valid() {
		return ErrInvalidChannel
	}

	s.to(StateIdle)

	s.to(StateConfiguringInput)
	if err := s.write(CommandWriteConfig, EncodeConfig(ch)); err != nil {
		return s.fail(err)
	}

	s.to(StateStarted)
	if err := s.write(CommandStartSync); err != nil {
		return s.fail(err)
	}

	s.to(StateAwaitingReady)
	return nil
}

// IsReady reads STATUS once and returns DRDY. It never loops; polling is up
// to the caller.
func (s *Sequencer) IsReady() (bool, error) {
	b, err := s.readRegister(RegSTATUS)
	if err != nil {
		return false, s.fail(err)
	}
	return DecodeStatus(b).DataReady, nil
}

// ReadResult issues RDATA and decodes the two data bytes. Reading the data
// clears DRDY on the device.
func (s *Sequencer) ReadResult() (int16, error) {
	s.to(StateReading)

	buf := get2Bytes()
	defer put2Bytes(buf)

	if err := s.writeRead(CommandReadData, buf); err != nil {
		return 0, s.fail(err)
	}

	s.to(StateDone)
	return DecodeData(buf[0], buf[1]), nil
}

// Reset issues RESET. CONFIG returns to its power-on default.
func (s *Sequencer) Reset() error {
	if err := s.write(CommandReset); err != nil {
		return s.fail(err)
	}
	s.to(StateIdle)
	return nil
}

// ReadConfig reads back CONFIG with RREG.
func (s *Sequencer) ReadConfig() (ConfigRegister, error) {
	b, err := s.readRegister(RegCONFIG)
	if err != nil {
		return ConfigRegister{}, s.fail(err)
	}
	return DecodeConfig(b), nil
}
