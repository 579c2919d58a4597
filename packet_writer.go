package quicmux

import (
	"fmt"
	"net"

	"github.com/quicmux/quicmux/internal/protocol"
)

// WriteStatus is the outcome of a packet write attempt.
type WriteStatus uint8

const (
	// WriteStatusOK means the packet was handed to the kernel.
	WriteStatusOK WriteStatus = iota
	// WriteStatusBlocked means the socket send buffer is full. The writer is
	// latched blocked until SetWritable is called; the caller queues the
	// packet and retries after the writability notification.
	WriteStatusBlocked
	// WriteStatusError is a hard I/O error. The caller treats it as a single
	// packet loss, it never tears down the dispatcher.
	WriteStatusError
)

func (s WriteStatus) String() string {
	switch s {
	case WriteStatusOK:
		return "ok"
	case WriteStatusBlocked:
		return "blocked"
	case WriteStatusError:
		return "error"
	default:
		return fmt.Sprintf("invalid write status: %d", uint8(s))
	}
}

// A WriteResult is the result of a single WritePacket call.
type WriteResult struct {
	Status       WriteStatus
	BytesWritten int
	// Err is set iff Status is WriteStatusError.
	Err error
}

// A PacketWriter writes a single encrypted packet to the network, without blocking.
//
// All methods must be called from the owning shard's event loop.
type PacketWriter interface {
	// WritePacket attempts a synchronous, non-blocking write.
	// It must not be called while the writer is blocked.
	WritePacket(b []byte, localAddr, remoteAddr net.Addr) WriteResult
	// IsWriteBlocked says if a previous write returned WriteStatusBlocked
	// and SetWritable has not been called since.
	IsWriteBlocked() bool
	// SetWritable clears the blocked latch. It is called by the event loop in
	// response to a writability notification. It does not flush any queued
	// packets; that is the caller's responsibility.
	SetWritable()
	// MaxPacketSize returns the maximum packet size for the path to the peer.
	// It has no side effects.
	MaxPacketSize(remoteAddr net.Addr) protocol.ByteCount
}

// A ForwardingPacketWriter forwards every call to an inner writer. A
// connection holds the wrapper, so it can be moved to a different physical
// writer after a migration without invalidating references held by in-flight
// code.
type ForwardingPacketWriter struct {
	inner PacketWriter
}

var _ PacketWriter = &ForwardingPacketWriter{}

// NewForwardingPacketWriter wraps a writer so the underlying writer can be
// swapped later.
func NewForwardingPacketWriter(inner PacketWriter) *ForwardingPacketWriter {
	return &ForwardingPacketWriter{inner: inner}
}

func (w *ForwardingPacketWriter) WritePacket(b []byte, localAddr, remoteAddr net.Addr) WriteResult {
	return w.inner.WritePacket(b, localAddr, remoteAddr)
}

func (w *ForwardingPacketWriter) IsWriteBlocked() bool { return w.inner.IsWriteBlocked() }
func (w *ForwardingPacketWriter) SetWritable()         { w.inner.SetWritable() }

func (w *ForwardingPacketWriter) MaxPacketSize(remoteAddr net.Addr) protocol.ByteCount {
	return w.inner.MaxPacketSize(remoteAddr)
}

// SetWriter swaps the underlying writer, e.g. after the connection migrated
// to a different socket.
func (w *ForwardingPacketWriter) SetWriter(inner PacketWriter) { w.inner = inner }
