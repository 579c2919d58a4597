package quicmux

import (
	"io"
	"log/slog"
	"time"

	"github.com/quicmux/quicmux/internal/protocol"
	"github.com/quicmux/quicmux/internal/slogutil"
)

// A StatelessResetKey is used to derive stateless reset tokens from
// connection IDs. Servers in a fleet share the key so any of them can reset a
// connection owned by another.
type StatelessResetKey [32]byte

// Config contains all configuration of a Dispatcher.
// It is passed at construction and not modified afterwards.
type Config struct {
	// ConnIDLen is the length of connection IDs this server issues.
	// It is needed to slice the connection ID out of short header packets.
	// If 0, protocol.DefaultConnectionIDLen is used.
	ConnIDLen int
	// TimeWaitTTL is how long the connection IDs of a closed session keep
	// answering retransmissions with a stateless reset.
	TimeWaitTTL time.Duration
	// MaxNewSessionsPerPass bounds session creation per event loop pass.
	MaxNewSessionsPerPass int
	// WindowNotifyFraction is the fraction of a flow control window size
	// limit below which the remaining window triggers a window update.
	WindowNotifyFraction float64
	// StatelessResetKey keys the HMAC deriving stateless reset tokens.
	// If nil, tokens are random and resets are only sent for time-wait hits.
	StatelessResetKey *StatelessResetKey
	// MaxStatelessRepliesPerSecond bounds version negotiation and stateless
	// reset replies, so the server cannot be used as a traffic amplifier.
	MaxStatelessRepliesPerSecond int
	// Versions are the QUIC versions accepted for new connections.
	Versions []Version
	// ECN is the codepoint set on all packets sent from a shard's socket.
	// ECNUnsupported leaves the socket configuration untouched.
	ECN ECN

	Logger *slog.Logger
	Tracer *Tracer
}

func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	c := *config
	if c.ConnIDLen == 0 {
		c.ConnIDLen = protocol.DefaultConnectionIDLen
	}
	if c.TimeWaitTTL == 0 {
		c.TimeWaitTTL = protocol.TimeWaitTTL
	}
	if c.MaxNewSessionsPerPass == 0 {
		c.MaxNewSessionsPerPass = protocol.MaxNewSessionsPerPass
	}
	if c.WindowNotifyFraction == 0 {
		c.WindowNotifyFraction = protocol.DefaultWindowNotifyFraction
	}
	if c.MaxStatelessRepliesPerSecond == 0 {
		c.MaxStatelessRepliesPerSecond = protocol.MaxStatelessResetsPerSecond
	}
	if len(c.Versions) == 0 {
		c.Versions = protocol.SupportedVersions
	}
	if c.Logger == nil {
		c.Logger = slogutil.NewLogger(io.Discard)
	}
	return &c
}
