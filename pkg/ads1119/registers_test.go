package ads1119

import (
	"errors"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	for _, ch := range Channels() {
		t.Run(ch.String(), func(t *testing.T) {
			got, ok := DecodeConfigChannel(EncodeConfig(ch))
			if !ok {
				t.Fatalf("mux of %s did not decode as single-ended", ch)
			}
			if got != ch {
				t.Errorf("expected %s, got %s", ch, got)
			}
		})
	}
}

func TestEncodeConfig(t *testing.T) {
	tests := []struct {
		ch   Channel
		want byte
	}{
		{AN0, 0x60},
		{AN1, 0x80},
		{AN2, 0xA0},
		{AN3, 0xC0},
	}
	for _, tt := range tests {
		got := EncodeConfig(tt.ch)
		if got != tt.want {
			t.Errorf("EncodeConfig(%s): expected 0x%02X, got 0x%02X", tt.ch, tt.want, got)
		}
		if got&^ConfigMuxMask != ConfigDefault {
			t.Errorf("EncodeConfig(%s) touched non-mux bits: %08b", tt.ch, got)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	t.Run("KeepsOtherFields", func(t *testing.T) {
		c := DecodeConfig(0x7F)
		if c.Mux != MuxAN0 {
			t.Errorf("expected mux %03b, got %03b", MuxAN0, c.Mux)
		}
		if c.Rest != 0x1F {
			t.Errorf("expected rest 0x1F, got 0x%02X", c.Rest)
		}
		if c.Byte() != 0x7F {
			t.Errorf("expected 0x7F, got 0x%02X", c.Byte())
		}
	})

	t.Run("Differential", func(t *testing.T) {
		// power-on default: AIN0-AIN1
		if _, ok := DecodeConfig(0x00).Channel(); ok {
			t.Error("differential mux decoded as a single-ended channel")
		}
		if _, ok := DecodeConfig(0xE0).Channel(); ok {
			t.Error("shorted mux decoded as a single-ended channel")
		}
	})
}

func TestDecodeStatus(t *testing.T) {
	if !DecodeStatus(0x80).DataReady {
		t.Error("expected ready for 0x80")
	}
	if DecodeStatus(0x00).DataReady {
		t.Error("expected not ready for 0x00")
	}
	if DecodeStatus(0x7F).DataReady {
		t.Error("reserved bits must not set DataReady")
	}
	if !DecodeStatus(0x81).DataReady {
		t.Error("expected ready for 0x81")
	}
}

func TestCommandByte(t *testing.T) {
	tests := []struct {
		cmd  Command
		want byte
	}{
		{CommandReset, 0x06},
		{CommandStartSync, 0x08},
		{CommandReadData, 0x10},
		{CommandReadConfig, 0x20},
		{CommandReadStatus, 0x24},
		{CommandWriteConfig, 0x40},
	}
	for _, tt := range tests {
		if got := tt.cmd.Byte(); got != tt.want {
			t.Errorf("%s: expected 0x%02X, got 0x%02X", tt.cmd, tt.want, got)
		}
	}

	t.Run("Unknown", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for unknown command")
			}
		}()
		_ = Command(0xFF).Byte()
	})
}

func TestParseChannel(t *testing.T) {
	for in, want := range map[string]Channel{
		"AN0":  AN0,
		"an1":  AN1,
		"AIN2": AN2,
		" 3 ":  AN3,
	} {
		got, err := ParseChannel(in)
		if err != nil {
			t.Errorf("ParseChannel(%q): unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseChannel(%q): expected %s, got %s", in, want, got)
		}
	}

	for _, in := range []string{"", "AN4", "AIN0-AIN1", "x"} {
		if _, err := ParseChannel(in); !errors.Is(err, ErrInvalidChannel) {
			t.Errorf("ParseChannel(%q): expected ErrInvalidChannel, got %v", in, err)
		}
	}
}
