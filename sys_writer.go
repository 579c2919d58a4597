package quicmux

import (
	"log/slog"
	"net"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"github.com/quicmux/quicmux/internal/protocol"
)

// A sysPacketWriter writes packets to a net.PacketConn.
// The connection is expected to be in non-blocking mode (the net package
// guarantees this for UDP sockets); a full send buffer surfaces as
// WriteStatusBlocked and latches the writer.
type sysPacketWriter struct {
	conn net.PacketConn

	writeBlocked bool

	logger *slog.Logger
}

var _ PacketWriter = &sysPacketWriter{}

// NewSysPacketWriter creates a PacketWriter writing to the given conn.
func NewSysPacketWriter(conn net.PacketConn, logger *slog.Logger) PacketWriter {
	return &sysPacketWriter{
		conn:   conn,
		logger: logger.With(slog.String("component", "packet_writer")),
	}
}

func (w *sysPacketWriter) WritePacket(b []byte, _, remoteAddr net.Addr) WriteResult {
	if w.writeBlocked {
		w.logger.Error("BUG: WritePacket called on a blocked writer", slog.Any("remote", remoteAddr))
		return WriteResult{Status: WriteStatusBlocked}
	}
	n, err := w.conn.WriteTo(b, remoteAddr)
	if err != nil {
		if isSendBufferFull(err) {
			w.writeBlocked = true
			return WriteResult{Status: WriteStatusBlocked}
		}
		return WriteResult{Status: WriteStatusError, Err: err}
	}
	return WriteResult{Status: WriteStatusOK, BytesWritten: n}
}

func (w *sysPacketWriter) IsWriteBlocked() bool { return w.writeBlocked }

func (w *sysPacketWriter) SetWritable() { w.writeBlocked = false }

func (w *sysPacketWriter) MaxPacketSize(remoteAddr net.Addr) protocol.ByteCount {
	// We don't probe the path MTU here. Use the conservative size that's
	// safe on practically every path; MTU discovery raises it per connection.
	return protocol.InitialPacketSize
}

// SetECN sets the ECN codepoint on all packets sent through the underlying
// socket, using the TOS / Traffic Class byte. It only works for *net.UDPConn.
func SetECN(conn net.PacketConn, ecn protocol.ECN) error {
	udpConn, ok := conn.(*net.UDPConn)
	if !ok {
		return nil
	}
	if udpAddr, ok := udpConn.LocalAddr().(*net.UDPAddr); ok && udpAddr.IP.To4() != nil {
		return ipv4.NewConn(udpConn).SetTOS(int(ecn.ToHeaderBits()))
	}
	return ipv6.NewConn(udpConn).SetTrafficClass(int(ecn.ToHeaderBits()))
}
