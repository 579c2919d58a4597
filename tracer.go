package quicmux

import (
	"net"

	"github.com/quicmux/quicmux/internal/protocol"
)

// PacketDropReason is the reason a datagram was dropped without creating state.
type PacketDropReason uint8

const (
	// DropHeaderParseError is used for datagrams too short or malformed to
	// extract a connection ID from.
	DropHeaderParseError PacketDropReason = iota
	// DropUnexpectedPacket is used for packets that cannot start a new
	// connection, e.g. short header packets for unknown connection IDs.
	DropUnexpectedPacket
	// DropRuntInitial is used for would-be Initial packets below the minimum size.
	DropRuntInitial
	// DropSessionLimitReached is used when the per-pass session creation cap was hit.
	DropSessionLimitReached
	// DropRateLimited is used when the stateless reply budget was exhausted.
	DropRateLimited
	// DropWriteBlocked is used when a stateless reply could not be sent
	// because the packet writer is blocked.
	DropWriteBlocked
	// DropSessionRejected is used when the session constructor refused the connection.
	DropSessionRejected
)

func (r PacketDropReason) String() string {
	switch r {
	case DropHeaderParseError:
		return "header_parse_error"
	case DropUnexpectedPacket:
		return "unexpected_packet"
	case DropRuntInitial:
		return "runt_initial"
	case DropSessionLimitReached:
		return "session_limit_reached"
	case DropRateLimited:
		return "rate_limited"
	case DropWriteBlocked:
		return "write_blocked"
	case DropSessionRejected:
		return "session_rejected"
	default:
		return "unknown"
	}
}

// A Tracer records dispatcher level events. Any callback may be nil.
// Callbacks are invoked synchronously from the shard's event loop and must not block.
type Tracer struct {
	DroppedPacket            func(remote net.Addr, reason PacketDropReason, size protocol.ByteCount)
	SentVersionNegotiation   func(remote net.Addr, dest, src protocol.ConnectionID)
	SentStatelessReset       func(remote net.Addr, size protocol.ByteCount)
	SessionStarted           func(remote net.Addr, connID protocol.ConnectionID, v protocol.Version)
	SessionClosed            func(connID protocol.ConnectionID)
}

func (t *Tracer) droppedPacket(remote net.Addr, reason PacketDropReason, size protocol.ByteCount) {
	if t != nil && t.DroppedPacket != nil {
		t.DroppedPacket(remote, reason, size)
	}
}

func (t *Tracer) sentVersionNegotiation(remote net.Addr, dest, src protocol.ConnectionID) {
	if t != nil && t.SentVersionNegotiation != nil {
		t.SentVersionNegotiation(remote, dest, src)
	}
}

func (t *Tracer) sentStatelessReset(remote net.Addr, size protocol.ByteCount) {
	if t != nil && t.SentStatelessReset != nil {
		t.SentStatelessReset(remote, size)
	}
}

func (t *Tracer) sessionStarted(remote net.Addr, connID protocol.ConnectionID, v protocol.Version) {
	if t != nil && t.SessionStarted != nil {
		t.SessionStarted(remote, connID, v)
	}
}

func (t *Tracer) sessionClosed(connID protocol.ConnectionID) {
	if t != nil && t.SessionClosed != nil {
		t.SessionClosed(connID)
	}
}
