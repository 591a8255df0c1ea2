package ads1119

import "fmt"

// Register selects CONFIG or STATUS for RREG/WREG.
type Register byte

func (r Register) String() string {
	switch r {
	case RegCONFIG:
		return "CONFIG"
	case RegSTATUS:
		return "STATUS"
	default:
		return fmt.Sprintf("Register(0x%02X)", byte(r))
	}
}

// ConfigRegister is a decoded CONFIG register. Only the MUX field is interpreted;
// the remaining bits are kept as read so that they can be inspected but are
// never changed by this driver.
type ConfigRegister struct {
	Mux  byte // bits [7:5]
	Rest byte // bits [4:0]: GAIN, DR, CM, VREF
}

// EncodeConfig builds the CONFIG byte selecting ch, with gain 1, 20 SPS,
// single-shot and internal reference.
func EncodeConfig(ch Channel) byte {
	return ConfigDefault | (ch.Mux()<<ConfigMuxShift)&ConfigMuxMask
}

// DecodeConfig splits a CONFIG byte into its MUX and remaining bits.
func DecodeConfig(b byte) ConfigRegister {
	return ConfigRegister{
		Mux:  (b & ConfigMuxMask) >> ConfigMuxShift,
		Rest: b &^ ConfigMuxMask,
	}
}

// Byte reassembles the register value.
func (c ConfigRegister) Byte() byte {
	return (c.Mux<<ConfigMuxShift)&ConfigMuxMask | c.Rest&^ConfigMuxMask
}

// Channel returns the single-ended input selected by the MUX field. It
// reports false for differential or shorted-input codes.
func (c ConfigRegister) Channel() (Channel, bool) {
	return channelFromMux(c.Mux)
}

func (c ConfigRegister) String() string {
	ch, ok := c.Channel()
	name := ch.String()
	if !ok {
		name = fmt.Sprintf("mux=%03b", c.Mux)
	}
	return fmt.Sprintf("ConfigRegister{%s, rest=%05b}", name, c.Rest)
}

// DecodeConfigChannel is shorthand for DecodeConfig(b).Channel().
func DecodeConfigChannel(b byte) (Channel, bool) {
	return DecodeConfig(b).Channel()
}

// Status is a decoded STATUS register.
type Status struct {
	// DataReady is set by the device when a conversion result is waiting and
	// cleared by the device when the result is read with RDATA.
	DataReady bool
}

// DecodeStatus extracts DRDY; every other bit is reserved.
func DecodeStatus(b byte) Status {
	return Status{DataReady: b&StatusDRDYbit != 0}
}
