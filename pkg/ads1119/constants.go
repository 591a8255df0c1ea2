package ads1119

// Constants from the datasheet

// DefaultAddress is the 7-bit I2C address with A0 and A1 tied to DGND.
const DefaultAddress uint16 = 0x40

// Register selectors
const (
	// RegCONFIG is the configuration register
	RegCONFIG Register = 0x00
	// RegSTATUS is the status register (read-only)
	RegSTATUS Register = 0x01

	// NumRegisters is the total number of registers.
	NumRegisters = 0x02
)

// Command Opcodes
const (
	CMDRESET     = 0x06
	CMDSTARTSYNC = 0x08
	CMDRDATA     = 0x10
	CMDRREG      = 0x20 // 0x20 | (reg << 2)
	CMDWREG      = 0x40 // 0x40 | (reg << 2), then one data byte

	// regSelectShift positions the register selector in RREG/WREG.
	regSelectShift = 2
	regSelectMask  = 0x01
)

// CONFIG register layout
// | 7  6  5 | 4    | 3  2 | 1  | 0    |
// | MUX     | GAIN | DR   | CM | VREF |
const (
	ConfigMuxShift = 5
	ConfigMuxMask  = 0xE0
	ConfigGainBit  = 0x10
	ConfigDRMask   = 0x0C
	ConfigDRShift  = 2
	ConfigCMBit    = 0x02
	ConfigVREFBit  = 0x01

	// ConfigDefault is the power-on value: gain 1, 20 SPS, single-shot,
	// internal 2.048V reference.
	ConfigDefault = 0x00
)

// Single-ended MUX codes for bits [7:5] of CONFIG.
const (
	MuxAN0 = 0b011 // AIN0 - AGND
	MuxAN1 = 0b100 // AIN1 - AGND
	MuxAN2 = 0b101 // AIN2 - AGND
	MuxAN3 = 0b110 // AIN3 - AGND
)

// Bits for the STATUS register
const (
	StatusDRDYbit = 0x80 // (bit7, read-only)
)

// Conversion scaling for the internal reference, single-ended.
const (
	// FullScaleVolts is the internal reference voltage.
	FullScaleVolts = 2.048
	// MaxCode is the code that maps to FullScaleVolts.
	MaxCode = 0x7FFF
)
