package ads1119

import (
	"errors"
	"fmt"
	"strings"
)

// Channel is a single-ended input. Only AN0 through AN3 exist; differential
// pairs are not representable.
type Channel uint8

const (
	AN0 Channel = iota
	AN1
	AN2
	AN3

	numChannels
)

// ErrInvalidChannel is returned when parsing a channel name that is not AN0-AN3.
var ErrInvalidChannel = errors.New("ads1119: invalid channel")

// Channels lists every single-ended input in scan order.
func Channels() []Channel {
	return []Channel{AN0, AN1, AN2, AN3}
}

// Valid reports whether c is one of the four single-ended inputs.
func (c Channel) Valid() bool {
	return c < numChannels
}

// Mux returns the 3-bit MUX code that routes c against AGND.
func (c Channel) Mux() byte {
	switch c {
	case AN1:
		return MuxAN1
	case AN2:
		return MuxAN2
	case AN3:
		return MuxAN3
	default:
		return MuxAN0
	}
}

func (c Channel) String() string {
	switch c {
	case AN0:
		return "AN0"
	case AN1:
		return "AN1"
	case AN2:
		return "AN2"
	case AN3:
		return "AN3"
	default:
		return "(invalid channel)"
	}
}

// channelFromMux is the inverse of Channel.Mux. Differential and shorted
// MUX codes report false.
func channelFromMux(mux byte) (Channel, bool) {
	switch mux {
	case MuxAN0:
		return AN0, true
	case MuxAN1:
		return AN1, true
	case MuxAN2:
		return AN2, true
	case MuxAN3:
		return AN3, true
	default:
		return 0, false
	}
}

// ParseChannel accepts "AN0".."AN3", "AIN0".."AIN3" or a bare "0".."3",
// case-insensitively.
func ParseChannel(s string) (Channel, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "AIN")
	v = strings.TrimPrefix(v, "AN")
	if len(v) == 1 && v[0] >= '0' && v[0] <= '3' {
		return Channel(v[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChannel, s)
}
