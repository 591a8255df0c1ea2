package ads1119

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestScanChannels(t *testing.T) {
	t.Run("Samples", func(t *testing.T) {
		bus := &fakeBus{data: [2]byte{0x40, 0x00}}
		adc := newTestADC(bus, 3)

		var (
			mu   sync.Mutex
			seen []Sample
		)

		cs, err := adc.ScanChannels(context.Background(), time.Millisecond, func(s Sample) {
			mu.Lock()
			seen = append(seen, s)
			mu.Unlock()
		}, AN0, AN3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		deadline := time.Now().Add(2 * time.Second)
		for {
			mu.Lock()
			n := len(seen)
			mu.Unlock()
			if n >= 4 || time.Now().After(deadline) {
				break
			}
			time.Sleep(time.Millisecond)
		}
		cs.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err = cs.Wait(ctx); err != nil {
			t.Fatalf("scan errors: %v", err)
		}
		if !cs.IsDone() {
			t.Error("scan not done after Wait")
		}

		mu.Lock()
		defer mu.Unlock()
		if len(seen) < 4 {
			t.Fatalf("expected at least 4 samples, got %d", len(seen))
		}
		if seen[0].Channel != AN0 || seen[1].Channel != AN3 {
			t.Errorf("unexpected scan order: %s, %s", seen[0].Channel, seen[1].Channel)
		}
		for _, s := range seen {
			if s.Code != 16384 || s.Volts != ScaleVoltage(16384) {
				t.Errorf("unexpected sample: %+v", s)
			}
		}
	})

	t.Run("ContextCancel", func(t *testing.T) {
		bus := &fakeBus{}
		adc := newTestADC(bus, 1)

		ctx, cancel := context.WithCancel(context.Background())
		cs, err := adc.ScanChannels(ctx, time.Hour, func(Sample) {}, AN1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cancel()

		waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer waitCancel()
		if err = cs.Wait(waitCtx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("TooManyErrors", func(t *testing.T) {
		bus := &fakeBus{failOn: CMDWREG, failErr: errBus}
		adc := newTestADC(bus, 1)

		cs, err := adc.ScanChannels(context.Background(), time.Millisecond, func(Sample) {
			t.Error("callback called on failed conversion")
		}, Channels()...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = cs.Wait(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			t.Fatal("scan did not stop on repeated errors")
		}
		if !errors.Is(err, errBus) {
			t.Errorf("expected bus errors, got %v", err)
		}
	})

	t.Run("Interval", func(t *testing.T) {
		for _, tc := range []struct {
			in, want time.Duration
		}{
			{0, time.Millisecond},
			{-time.Second, time.Millisecond},
			{time.Hour, time.Hour},
		} {
			adc := newTestADC(&fakeBus{}, 1)
			ctx, cancel := context.WithCancel(context.Background())
			cs, err := adc.ScanChannels(ctx, tc.in, func(Sample) {}, AN0)
			if err != nil {
				cancel()
				t.Fatalf("unexpected error: %v", err)
			}
			if cs.Interval != tc.want {
				t.Errorf("interval %s: expected %s, got %s", tc.in, tc.want, cs.Interval)
			}
			cancel()
			waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err = cs.Wait(waitCtx); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			waitCancel()
		}
	})

	t.Run("BadArguments", func(t *testing.T) {
		adc := newTestADC(&fakeBus{}, 1)
		if _, err := adc.ScanChannels(context.Background(), time.Second, func(Sample) {}); err == nil {
			t.Error("expected error for no channels")
		}
		if _, err := adc.ScanChannels(context.Background(), time.Second, nil, AN0); err == nil {
			t.Error("expected error for nil callback")
		}
		if _, err := adc.ScanChannels(context.Background(), time.Second, func(Sample) {}, Channel(9)); !errors.Is(err, ErrInvalidChannel) {
			t.Errorf("expected ErrInvalidChannel, got %v", err)
		}
	})
}
