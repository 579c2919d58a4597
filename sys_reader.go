package quicmux

import (
	"log/slog"
	"net"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"github.com/quicmux/quicmux/internal/protocol"
)

// A packetReader reads datagrams together with their ECN mark.
type packetReader interface {
	ReadPacket(b []byte) (n int, addr net.Addr, ecn protocol.ECN, err error)
}

// newPacketReader builds the reader for a socket. For UDP sockets it enables
// delivery of the TOS / Traffic Class byte, so received packets carry their
// ECN codepoint; on any other conn ECN is reported as unsupported.
func newPacketReader(conn net.PacketConn, logger *slog.Logger) packetReader {
	udpConn, ok := conn.(*net.UDPConn)
	if !ok {
		return &plainPacketReader{conn: conn}
	}
	if udpAddr, ok := udpConn.LocalAddr().(*net.UDPAddr); ok && udpAddr.IP.To4() != nil {
		p := ipv4.NewPacketConn(udpConn)
		if err := p.SetControlMessage(ipv4.FlagTOS, true); err != nil {
			logger.Debug("disabling inbound ECN, can't enable TOS delivery", slog.Any("error", err))
			return &plainPacketReader{conn: conn}
		}
		return &ipv4PacketReader{conn: p}
	}
	p := ipv6.NewPacketConn(udpConn)
	if err := p.SetControlMessage(ipv6.FlagTrafficClass, true); err != nil {
		logger.Debug("disabling inbound ECN, can't enable Traffic Class delivery", slog.Any("error", err))
		return &plainPacketReader{conn: conn}
	}
	return &ipv6PacketReader{conn: p}
}

type plainPacketReader struct{ conn net.PacketConn }

func (r *plainPacketReader) ReadPacket(b []byte) (int, net.Addr, protocol.ECN, error) {
	n, addr, err := r.conn.ReadFrom(b)
	return n, addr, protocol.ECNUnsupported, err
}

type ipv4PacketReader struct{ conn *ipv4.PacketConn }

func (r *ipv4PacketReader) ReadPacket(b []byte) (int, net.Addr, protocol.ECN, error) {
	n, cm, addr, err := r.conn.ReadFrom(b)
	ecn := protocol.ECNUnsupported
	if cm != nil {
		ecn = protocol.ParseECNHeaderBits(uint8(cm.TOS))
	}
	return n, addr, ecn, err
}

type ipv6PacketReader struct{ conn *ipv6.PacketConn }

func (r *ipv6PacketReader) ReadPacket(b []byte) (int, net.Addr, protocol.ECN, error) {
	n, cm, addr, err := r.conn.ReadFrom(b)
	ecn := protocol.ECNUnsupported
	if cm != nil {
		ecn = protocol.ParseECNHeaderBits(uint8(cm.TrafficClass))
	}
	return n, addr, ecn, err
}
