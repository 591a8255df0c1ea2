package ads1119

import "fmt"

// Command is one of the fixed command bytes the driver sends.
type Command uint8

const (
	CommandReset Command = iota
	CommandStartSync
	CommandReadData
	CommandReadConfig
	CommandReadStatus
	CommandWriteConfig
)

// Byte returns the leading byte on the wire. Register commands carry the
// register selector in bits [3:2].
func (cmd Command) Byte() byte {
	switch cmd {
	case CommandReset:
		return CMDRESET
	case CommandStartSync:
		return CMDSTARTSYNC
	case CommandReadData:
		return CMDRDATA
	case CommandReadConfig:
		return regCommand(CMDRREG, RegCONFIG)
	case CommandReadStatus:
		return regCommand(CMDRREG, RegSTATUS)
	case CommandWriteConfig:
		return regCommand(CMDWREG, RegCONFIG)
	}
	panic(fmt.Sprintf("ads1119: unknown command %d", uint8(cmd)))
}

func (cmd Command) String() string {
	switch cmd {
	case CommandReset:
		return "RESET"
	case CommandStartSync:
		return "START/SYNC"
	case CommandReadData:
		return "RDATA"
	case CommandReadConfig:
		return "RREG(CONFIG)"
	case CommandReadStatus:
		return "RREG(STATUS)"
	case CommandWriteConfig:
		return "WREG(CONFIG)"
	default:
		return "(invalid command)"
	}
}

// readCommand returns the RREG command selecting reg.
func readCommand(reg Register) Command {
	if reg == RegSTATUS {
		return CommandReadStatus
	}
	return CommandReadConfig
}

func regCommand(op byte, reg Register) byte {
	return op | (byte(reg)&regSelectMask)<<regSelectShift
}
