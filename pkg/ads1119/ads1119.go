// Package ads1119 drives a TI ADS1119 16-bit delta-sigma ADC over I2C in
// single-ended, internal-reference, one-shot mode.
//
// Datasheet: https://www.ti.com/lit/ds/symlink/ads1119.pdf
package ads1119

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"tinygo.org/x/drivers"
)

// Config represents user-level driver parameters.
type Config struct {
	Address      uint16        // 7-bit I2C address, DefaultAddress if zero
	PollAttempts int           // STATUS reads before giving up on a conversion
	PollInterval time.Duration // delay between STATUS reads

	// Sleep performs the delay between polls. Defaults to time.Sleep.
	Sleep func(time.Duration)

	// Logger receives state transitions at trace level. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultConfig provides default config. You can adjust as needed
func DefaultConfig() Config {
	return Config{
		Address:      DefaultAddress,
		PollAttempts: 10,                    // 20 SPS conversions take ~50ms
		PollInterval: 10 * time.Millisecond, // so ten polls leave headroom
		Sleep:        time.Sleep,
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Address == 0 {
		cfg.Address = def.Address
	}
	if cfg.PollAttempts <= 0 {
		cfg.PollAttempts = def.PollAttempts
	}
	if cfg.PollInterval < 0 {
		cfg.PollInterval = 0
	}
	if cfg.Sleep == nil {
		cfg.Sleep = def.Sleep
	}
	return cfg
}

// ADS1119 provides high-level control over a TI ADS1119 ADC.
//
// It is not safe for concurrent use: configure, start, poll and read must
// run uninterrupted per acquisition, so one ADS1119 must own the bus while a
// read is in flight.
type ADS1119 struct {
	seq *Sequencer
	cfg Config

	// last channel successfully configured and started
	channel      Channel
	channelKnown bool
}

// NewADS1119 constructs an ADS1119 on an already configured I2C bus. Zero
// fields of cfg take their DefaultConfig values.
func NewADS1119(bus drivers.I2C, cfg Config) *ADS1119 {
	cfg = cfg.withDefaults()
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().
			Str("driver", "ads1119").
			Uint16("addr", cfg.Address).
			Logger()
	}
	return &ADS1119{
		seq: NewSequencer(bus, cfg.Address, log),
		cfg: cfg,
	}
}

// Address returns the I2C address the driver talks to.
func (adc *ADS1119) Address() uint16 {
	return adc.cfg.Address
}

// Channel returns the last channel successfully configured, and false if it
// is unknown (never configured, or reset since).
func (adc *ADS1119) Channel() (Channel, bool) {
	return adc.channel, adc.channelKnown
}

// State returns the phase of the current or last acquisition.
func (adc *ADS1119) State() State {
	return adc.seq.State()
}

// Reset triggers a software reset using the RESET command. The configured
// channel is forgotten once the command is accepted.
func (adc *ADS1119) Reset() error {
	if err := adc.seq.Reset(); err != nil {
		return err
	}
	adc.channelKnown = false
	return nil
}

// ReadStatus reads STATUS once and returns DRDY.
func (adc *ADS1119) ReadStatus() (bool, error) {
	return adc.seq.IsReady()
}

// SelectInputAndStart selects ch and starts a single conversion. Use
// ReadStatus to poll for completion and ReadResult to collect the code.
func (adc *ADS1119) SelectInputAndStart(ch Channel) error {
	if err := adc.seq.SelectInputAndStart(ch); err != nil {
		return err
	}
	adc.channel, adc.channelKnown = ch, true
	return nil
}

// ReadResult reads the conversion code with RDATA. Call it only after
// ReadStatus has reported true.
func (adc *ADS1119) ReadResult() (int16, error) {
	return adc.seq.ReadResult()
}

// ReadConfig reads back the CONFIG register.
func (adc *ADS1119) ReadConfig() (ConfigRegister, error) {
	return adc.seq.ReadConfig()
}

// Registers reads every register, for debugging.
func (adc *ADS1119) Registers() (map[Register]byte, error) {
	regs := make(map[Register]byte, NumRegisters)
	for reg := Register(0); reg < NumRegisters; reg++ {
		b, err := adc.seq.readRegister(reg)
		if err != nil {
			return nil, adc.seq.fail(err)
		}
		regs[reg] = b
	}
	return regs, nil
}

// ReadChannel performs a complete one-shot conversion on ch and returns the
// raw code. DRDY is polled up to PollAttempts times; if it never sets,
// ErrConversionTimeout is returned and no RDATA is issued.
func (adc *ADS1119) ReadChannel(ctx context.Context, ch Channel) (int16, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := adc.SelectInputAndStart(ch); err != nil {
		return 0, err
	}

	for attempt := 0; attempt < adc.cfg.PollAttempts; attempt++ {
		if attempt > 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			adc.cfg.Sleep(adc.cfg.PollInterval)
		}

		ready, err := adc.seq.IsReady()
		if err != nil {
			return 0, err
		}
		if ready {
			return adc.seq.ReadResult()
		}
	}

	return 0, ErrConversionTimeout
}

// ReadChannelVoltageContext is ReadChannelVoltage with cancellation checked
// between status polls.
func (adc *ADS1119) ReadChannelVoltageContext(ctx context.Context, ch Channel) (float64, error) {
	code, err := adc.ReadChannel(ctx, ch)
	if err != nil {
		return 0, err
	}
	return ScaleVoltage(code), nil
}

// ReadChannelVoltage performs a complete one-shot conversion on ch and
// returns the input voltage.
func (adc *ADS1119) ReadChannelVoltage(ch Channel) (float64, error) {
	return adc.ReadChannelVoltageContext(context.Background(), ch)
}
