package protocol

import "fmt"

// A ByteCount in QUIC
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// InvalidByteCount is an invalid byte count
const InvalidByteCount ByteCount = -1

// ECN is the ECN codepoint of a packet, as carried in the IP header.
type ECN uint8

const (
	ECNUnsupported ECN = iota
	ECNNonECT          // 00
	ECT1               // 01
	ECT0               // 10
	ECNCE              // 11
)

func (e ECN) String() string {
	switch e {
	case ECNUnsupported:
		return "ECN unsupported"
	case ECNNonECT:
		return "Not-ECT"
	case ECT1:
		return "ECT(1)"
	case ECT0:
		return "ECT(0)"
	case ECNCE:
		return "CE"
	default:
		return fmt.Sprintf("invalid ECN value: %d", uint8(e))
	}
}

// ToHeaderBits converts the ECN value to the bits carried in the TOS / Traffic Class field.
func (e ECN) ToHeaderBits() uint8 {
	switch e {
	case ECNNonECT:
		return 0b00
	case ECT1:
		return 0b01
	case ECT0:
		return 0b10
	case ECNCE:
		return 0b11
	default:
		panic("invalid ECN value")
	}
}

// ParseECNHeaderBits parses the ECN bits of the TOS / Traffic Class field.
func ParseECNHeaderBits(bits uint8) ECN {
	switch bits & 0b11 {
	case 0b00:
		return ECNNonECT
	case 0b01:
		return ECT1
	case 0b10:
		return ECT0
	case 0b11:
		return ECNCE
	}
	panic("unreachable")
}
