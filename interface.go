// Package quicmux implements the server-side connection management core of a
// QUIC stack: demultiplexing of incoming UDP datagrams to per-connection
// state, timer driven path liveness detection, receive flow control
// accounting, and the non-blocking packet write path.
//
// Cryptographic handshake content, congestion control signal algorithms, and
// frame level parsing are external collaborators, consumed through the
// Session and PacketWriter interfaces.
package quicmux

import (
	"net"
	"time"

	"github.com/quicmux/quicmux/internal/protocol"
)

// A ConnectionID routes packets to a connection independently of the peer's address.
type ConnectionID = protocol.ConnectionID

// A ByteCount is a count of bytes.
type ByteCount = protocol.ByteCount

// A Version is a QUIC version number.
type Version = protocol.Version

// ECN is the ECN codepoint of a packet, as carried in the IP header.
type ECN = protocol.ECN

const (
	ECNUnsupported = protocol.ECNUnsupported
	ECNNonECT      = protocol.ECNNonECT
	ECT1           = protocol.ECT1
	ECT0           = protocol.ECT0
	ECNCE          = protocol.ECNCE
)

// A ReceivedPacket is a single UDP datagram, as read from the socket.
type ReceivedPacket struct {
	Data []byte
	// LocalAddr is the address the datagram was received on.
	LocalAddr net.Addr
	// RemoteAddr is the address the datagram was sent from.
	RemoteAddr net.Addr
	RcvTime    time.Time
	// ECN is the ECN codepoint the datagram arrived with, or ECNUnsupported
	// if the socket doesn't deliver it.
	ECN ECN
}

// Size returns the size of the datagram.
func (p ReceivedPacket) Size() ByteCount { return ByteCount(len(p.Data)) }

// A Session owns the frame level protocol state of a single connection.
// The Dispatcher holds a non-owning reference to it, keyed by one or more
// connection IDs. All methods are called from the shard's event loop.
type Session interface {
	// HandlePacket processes a datagram that was routed to this session.
	// The session is responsible for rejecting malformed or unauthenticated content.
	HandlePacket(ReceivedPacket)
	// IsEstablished says if the cryptographic handshake has completed.
	IsEstablished() bool
	// ConnectionIDs returns all connection IDs currently routing to this session.
	ConnectionIDs() []ConnectionID
	// Destroy tears down the session without sending anything to the peer.
	// It is called after the dispatcher has removed the session from its tables.
	Destroy(error)
}

// A SessionConstructor creates the session for a freshly accepted connection.
// The datagram that triggered creation is forwarded to the returned session
// by the dispatcher.
type SessionConstructor func(destConnID ConnectionID, v Version, remoteAddr net.Addr) (Session, error)
