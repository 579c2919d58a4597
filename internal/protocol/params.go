package protocol

import "time"

// DefaultConnectionIDLen is the connection ID length the server uses for IDs it generates.
const DefaultConnectionIDLen = 8

// MinInitialPacketSize is the minimum size of an Initial packet, in bytes.
// Smaller datagrams that would otherwise create a new session are dropped.
const MinInitialPacketSize = 1200

// MaxPacketBufferSize is the maximum packet size we expect to read from or write to the network.
const MaxPacketBufferSize = 1452

// InitialPacketSize is the assumed payload size before path MTU discovery has run.
const InitialPacketSize = 1280

// MinUnknownVersionPacketSize is the minimum size of a packet that we respond
// to with a version negotiation packet. Anything smaller cannot be a valid
// first packet, and answering it would make us an amplifier.
const MinUnknownVersionPacketSize = MinInitialPacketSize

// TimeWaitTTL is the duration connection IDs of closed sessions stay routable,
// so that retransmissions can be answered with a stateless reset.
const TimeWaitTTL = 5 * time.Second

// MaxNewSessionsPerPass bounds the number of sessions created while draining
// one batch of socket readiness. Initials beyond the cap are dropped statelessly.
const MaxNewSessionsPerPass = 16

// DefaultMaxReceiveWindow is the default upper bound of a flow control window.
const DefaultMaxReceiveWindow ByteCount = (1 << 10) * 512 // 512 kB

// DefaultWindowNotifyFraction is the fraction of the window size limit below
// which the remaining window must fall before the peer is granted more credit.
const DefaultWindowNotifyFraction = 0.5

// MinStatelessResetSize is the minimum size of a stateless reset packet:
// 1 byte header, 4 bytes random payload, 16 bytes token.
const MinStatelessResetSize = 1 + 4 + 16

// StatelessResetTokenLen is the length of a stateless reset token.
const StatelessResetTokenLen = 16

// MaxStatelessResetsPerSecond bounds how many stateless replies (version
// negotiation and stateless resets) a dispatcher sends per second.
const MaxStatelessResetsPerSecond = 50
