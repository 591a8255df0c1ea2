package ads1119

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
)

// maxScanErrors stops a scan that keeps failing.
const maxScanErrors = 50

// Sample is one conversion taken during a scan.
type Sample struct {
	Channel Channel
	Code    int16
	Volts   float64
	Time    time.Time
}

type DataCallback func(s Sample)

// ChannelScan is a running scan started by ScanChannels.
type ChannelScan struct {
	// Interval is the time between rounds, clamped to at least 1ms.
	Interval time.Duration
	channels []Channel
	callback DataCallback

	done     *atomic.Bool
	finished chan struct{}

	err   []error
	errMu sync.Mutex
}

func newChannelScan(interval time.Duration, channels []Channel, onData DataCallback) *ChannelScan {
	return &ChannelScan{
		Interval: max(interval, time.Millisecond),
		channels: channels,
		callback: onData,
		done:     &atomic.Bool{},
		finished: make(chan struct{}),
		err:      make([]error, 0),
	}
}

func (cs *ChannelScan) addErr(err error) {
	if err == nil {
		return
	}
	cs.errMu.Lock()
	cs.err = append(cs.err, err)
	if len(cs.err) > maxScanErrors {
		cs.done.Store(true)
	}
	cs.errMu.Unlock()
}

// Err returns every error collected so far, combined.
func (cs *ChannelScan) Err() error {
	cs.errMu.Lock()
	defer cs.errMu.Unlock()
	if len(cs.err) == 0 {
		return nil
	}
	return fmt.Errorf("channel scan errors: %w", multierr.Combine(cs.err...))
}

// Stop asks the scan to finish after the conversion in flight.
func (cs *ChannelScan) Stop() {
	cs.done.Store(true)
}

func (cs *ChannelScan) IsDone() bool {
	return cs.done.Load()
}

// Wait blocks until the scan goroutine has exited or ctx is done, then
// returns the collected errors. The device may be used again once Wait
// returns without a context error.
func (cs *ChannelScan) Wait(ctx context.Context) error {
	select {
	case <-cs.finished:
		return cs.Err()
	case <-ctx.Done():
		return errors.Join(ctx.Err(), cs.Err())
	}
}

func (adc *ADS1119) scanOnce(ctx context.Context, cs *ChannelScan) {
	for _, ch := range cs.channels {
		if cs.done.Load() || ctx.Err() != nil {
			return
		}

		code, err := adc.ReadChannel(ctx, ch)
		if err != nil {
			if ctx.Err() == nil {
				cs.addErr(fmt.Errorf("%s: %w", ch, err))
			}
			continue
		}

		cs.callback(Sample{
			Channel: ch,
			Code:    code,
			Volts:   ScaleVoltage(code),
			Time:    time.Now(),
		})
	}
}

// ScanChannels cycles through channels, taking one one-shot conversion per
// channel each round and sleeping interval between rounds. onData is called
// from the scan goroutine after each successful conversion.
//
// The scan owns the device until it finishes: do not call other methods on
// adc until Wait returns.
func (adc *ADS1119) ScanChannels(
	ctx context.Context,
	interval time.Duration,
	onData DataCallback,
	channels ...Channel,
) (*ChannelScan, error) {
	if len(channels) == 0 {
		return nil, errors.New("no channels to scan")
	}
	if onData == nil {
		return nil, errors.New("nil data callback")
	}
	for _, ch := range channels {
		if !ch.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidChannel, ch)
		}
	}

	cs := newChannelScan(interval, channels, onData)

	go func() {
		defer close(cs.finished)

		ticker := time.NewTicker(cs.Interval)
		defer ticker.Stop()

		for {
			adc.scanOnce(ctx, cs)
			if cs.done.Load() {
				return
			}
			select {
			case <-ctx.Done():
				cs.done.Store(true)
				return
			case <-ticker.C:
			}
		}
	}()

	return cs, nil
}
