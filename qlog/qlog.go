// Package qlog records dispatcher level events as newline-delimited JSON, in
// the spirit of the qlog format. Only events that happen before or outside an
// established connection are recorded here; per-connection qlogs are the
// session's business.
package qlog

import (
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/quicmux/quicmux"
	"github.com/quicmux/quicmux/internal/protocol"
)

type writer struct {
	mutex sync.Mutex

	w             io.Writer
	referenceTime time.Time
	logger        *slog.Logger
}

func (w *writer) record(details eventDetails) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	enc := gojay.NewEncoder(w.w)
	ev := event{
		RelativeTime: time.Since(w.referenceTime),
		eventDetails: details,
	}
	if err := enc.EncodeArray(ev); err != nil {
		w.logger.Error("failed to encode qlog event", slog.Any("error", err))
		return
	}
	if _, err := io.WriteString(w.w, "\n"); err != nil {
		w.logger.Error("failed to write qlog event", slog.Any("error", err))
	}
}

func addrString(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	return addr.String()
}

// NewTracer creates a tracer writing events to w.
// The writer is used from the shard's event loop; buffering is the caller's choice.
func NewTracer(w io.Writer, logger *slog.Logger) *quicmux.Tracer {
	qw := &writer{
		w:             w,
		referenceTime: time.Now(),
		logger:        logger.With(slog.String("component", "qlog")),
	}
	return &quicmux.Tracer{
		DroppedPacket: func(remote net.Addr, reason quicmux.PacketDropReason, size protocol.ByteCount) {
			qw.record(eventPacketDropped{
				Remote: addrString(remote),
				Reason: reason.String(),
				Size:   int64(size),
			})
		},
		SentVersionNegotiation: func(remote net.Addr, dest, src protocol.ConnectionID) {
			qw.record(eventVersionNegotiationSent{
				Remote:           addrString(remote),
				DestConnectionID: dest.String(),
				SrcConnectionID:  src.String(),
			})
		},
		SentStatelessReset: func(remote net.Addr, size protocol.ByteCount) {
			qw.record(eventStatelessResetSent{
				Remote: addrString(remote),
				Size:   int64(size),
			})
		},
		SessionStarted: func(remote net.Addr, connID protocol.ConnectionID, v protocol.Version) {
			qw.record(eventSessionStarted{
				Remote:           addrString(remote),
				DestConnectionID: connID.String(),
				Version:          v.String(),
			})
		},
		SessionClosed: func(connID protocol.ConnectionID) {
			qw.record(eventSessionClosed{ConnectionID: connID.String()})
		},
	}
}
