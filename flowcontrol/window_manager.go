// Package flowcontrol implements the receive-side flow control accounting for
// streams and connections.
package flowcontrol

import (
	"fmt"
	"log/slog"

	"github.com/quicmux/quicmux/internal/protocol"
)

// A WindowUpdateListener is called with the number of bytes to add to the
// peer's advertised receive window. It is invoked synchronously from the call
// that triggered it, with a strictly positive delta.
type WindowUpdateListener func(delta protocol.ByteCount)

// A WindowManager tracks how much receive capacity was advertised to the peer
// versus how much was actually drained, and decides when to grant the peer
// more send credit.
//
// It keeps three quantities:
//   - limit: the upper bound of the receive window
//   - window: bytes the peer is currently authorized to send
//   - buffered: bytes accepted from the wire, but not yet delivered onward
//
// A WindowManager is not safe for concurrent use.
type WindowManager struct {
	limit    protocol.ByteCount
	window   protocol.ByteCount
	buffered protocol.ByteCount

	// The peer is granted more credit once the remaining window falls below
	// notifyFraction * limit.
	notifyFraction float64

	listener WindowUpdateListener
	logger   *slog.Logger
}

// NewWindowManager creates a WindowManager with the full window available to the peer.
// A notifyFraction of 0 selects the default.
func NewWindowManager(
	limit protocol.ByteCount,
	notifyFraction float64,
	listener WindowUpdateListener,
	logger *slog.Logger,
) *WindowManager {
	if notifyFraction == 0 {
		notifyFraction = protocol.DefaultWindowNotifyFraction
	}
	return &WindowManager{
		limit:          limit,
		window:         limit,
		notifyFraction: notifyFraction,
		listener:       listener,
		logger:         logger.With(slog.String("component", "flowcontrol")),
	}
}

// WindowSizeLimit returns the current upper bound of the receive window.
func (m *WindowManager) WindowSizeLimit() protocol.ByteCount { return m.limit }

// CurrentWindowSize returns the number of bytes the peer is still authorized to send.
func (m *WindowManager) CurrentWindowSize() protocol.ByteCount { return m.window }

// OnWindowSizeLimitChange changes the window size limit without notifying the
// listener. It is used when the new limit is already being communicated to the
// peer through another channel, e.g. a settings frame.
func (m *WindowManager) OnWindowSizeLimitChange(newLimit protocol.ByteCount) {
	m.window += newLimit - m.limit
	if m.window < 0 {
		m.window = 0
	}
	m.limit = newLimit
}

// SetWindowSizeLimit changes the window size limit and notifies the listener
// if the remaining window has fallen below the threshold for the new limit.
func (m *WindowManager) SetWindowSizeLimit(newLimit protocol.ByteCount) {
	m.limit = newLimit
	m.maybeNotifyListener()
}

// MarkDataBuffered records that bytes were accepted from the wire.
// It returns false if the peer has consumed the entire authorized window.
// Callers treat a false return as a flow control violation by the peer.
func (m *WindowManager) MarkDataBuffered(bytes protocol.ByteCount) bool {
	if bytes < 0 || m.buffered+bytes < m.buffered {
		panic(fmt.Sprintf("BUG: flow control buffered counter overflow (buffered: %d, added: %d)", m.buffered, bytes))
	}
	if m.window < bytes {
		m.logger.Debug("peer exceeded authorized window",
			slog.Int64("window", int64(m.window)),
			slog.Int64("bytes", int64(bytes)),
		)
		m.window = 0
	} else {
		m.window -= bytes
	}
	m.buffered += bytes
	return m.window > 0
}

// MarkDataFlushed records that previously buffered bytes were delivered
// onward and no longer occupy receive capacity. It may notify the listener,
// at most once.
func (m *WindowManager) MarkDataFlushed(bytes protocol.ByteCount) {
	if bytes > m.buffered {
		m.logger.Error("BUG: flushed more bytes than were buffered",
			slog.Int64("buffered", int64(m.buffered)),
			slog.Int64("bytes", int64(bytes)),
		)
		m.buffered = 0
	} else {
		m.buffered -= bytes
	}
	m.maybeNotifyListener()
}

// MarkWindowConsumed marks bytes as consumed without delivering them onward,
// e.g. when inbound data is discarded after a stream reset.
func (m *WindowManager) MarkWindowConsumed(bytes protocol.ByteCount) {
	m.MarkDataBuffered(bytes)
	m.MarkDataFlushed(bytes)
}

func (m *WindowManager) maybeNotifyListener() {
	// The credit not yet granted back to the peer.
	delta := m.limit - m.buffered - m.window
	if delta <= 0 {
		return
	}
	if m.window >= protocol.ByteCount(float64(m.limit)*m.notifyFraction) {
		return
	}
	m.window += delta
	m.listener(delta)
}
