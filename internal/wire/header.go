// Package wire parses the version-independent part of the QUIC header and
// composes the two stateless replies (version negotiation, stateless reset).
// Frame parsing and version-specific header protection live elsewhere.
package wire

import (
	"encoding/binary"
	"io"

	"github.com/quicmux/quicmux/internal/protocol"
)

// IsLongHeader says if this is a long header packet
func IsLongHeader(firstByte byte) bool {
	return firstByte&0x80 > 0
}

// IsPotentialQUICPacket says if this could be the start of a QUIC packet.
// The fixed bit is required by RFC 8999 for all packets that are not version
// negotiation packets.
func IsPotentialQUICPacket(firstByte byte) bool {
	return firstByte&0x40 > 0
}

// ParseConnectionID parses the destination connection ID of a packet.
// It uses the data slice for the connection ID.
// That means that the connection ID must not be used after the packet buffer is released.
func ParseConnectionID(data []byte, shortHeaderConnIDLen int) (protocol.ConnectionID, error) {
	if len(data) == 0 {
		return nil, io.EOF
	}
	if !IsLongHeader(data[0]) {
		if len(data) < shortHeaderConnIDLen+1 {
			return nil, io.EOF
		}
		return protocol.ConnectionID(data[1 : 1+shortHeaderConnIDLen]), nil
	}
	if len(data) < 6 {
		return nil, io.EOF
	}
	destConnIDLen := int(data[5])
	if destConnIDLen > protocol.MaxConnectionIDLen {
		return nil, protocol.ErrInvalidConnectionIDLen
	}
	if len(data) < 6+destConnIDLen {
		return nil, io.EOF
	}
	return protocol.ConnectionID(data[6 : 6+destConnIDLen]), nil
}

// ParseArbitraryLenConnectionIDs parses the most general form of a long header packet,
// using only the version-independent packet format as described in RFC 8999:
// https://datatracker.ietf.org/doc/html/rfc8999#section-5.1.
// It returns both the destination and the source connection ID.
func ParseArbitraryLenConnectionIDs(data []byte) (dest, src protocol.ConnectionID, err error) {
	if len(data) < 6 {
		return nil, nil, io.EOF
	}
	data = data[5:] // skip first byte and version field
	destConnIDLen := int(data[0])
	data = data[1:]
	if len(data) < destConnIDLen+1 {
		return nil, nil, io.EOF
	}
	dest = protocol.ConnectionID(data[:destConnIDLen])
	data = data[destConnIDLen:]
	srcConnIDLen := int(data[0])
	data = data[1:]
	if len(data) < srcConnIDLen {
		return nil, nil, io.EOF
	}
	src = protocol.ConnectionID(data[:srcConnIDLen])
	return dest, src, nil
}

// ParseVersion parses the version field of a long header packet.
func ParseVersion(data []byte) (protocol.Version, error) {
	if len(data) < 5 {
		return 0, io.EOF
	}
	return protocol.Version(binary.BigEndian.Uint32(data[1:5])), nil
}

// IsVersionNegotiationPacket says if this is a version negotiation packet
func IsVersionNegotiationPacket(b []byte) bool {
	if len(b) < 5 {
		return false
	}
	return IsLongHeader(b[0]) && b[1] == 0 && b[2] == 0 && b[3] == 0 && b[4] == 0
}

// IsLongHeaderInitial says if a long header packet carries the Initial packet
// type for the given version. The type bits moved between v1 and v2.
func IsLongHeaderInitial(firstByte byte, v protocol.Version) bool {
	typeBits := (firstByte & 0x30) >> 4
	switch v {
	case protocol.Version2:
		return typeBits == 0b01
	default:
		return typeBits == 0b00
	}
}
