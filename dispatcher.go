package quicmux

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/quicmux/quicmux/internal/protocol"
	"github.com/quicmux/quicmux/internal/utils"
	"github.com/quicmux/quicmux/internal/wire"
)

// A Dispatcher routes incoming datagrams to sessions by their destination
// connection ID, creates sessions for valid first packets of new connections,
// and answers everything else statelessly or not at all.
//
// Every code path that runs before a session exists does O(1) work and
// allocates no per-connection state: that is the DoS defense of this layer.
// A datagram can only make the server allocate if it looks like a valid
// Initial packet of a supported version, and even then only up to the
// per-pass session cap.
//
// A Dispatcher is owned by a single shard and must only be used from that
// shard's event loop. It is not internally synchronized.
type Dispatcher struct {
	config     *Config
	writer     PacketWriter
	newSession SessionConstructor
	resetter   *statelessResetter
	rand       *utils.Rand

	sessions map[string]Session
	timeWait map[string]*timeWaitRecord

	newSessionsThisPass int

	// replyLimiter bounds stateless replies (version negotiation, stateless
	// resets), so the server can't be used to amplify traffic towards a
	// spoofed source.
	replyLimiter *rate.Limiter

	logger *slog.Logger
	tracer *Tracer
}

// NewDispatcher creates a Dispatcher writing replies to the given writer and
// creating sessions with the given constructor.
func NewDispatcher(config *Config, writer PacketWriter, newSession SessionConstructor) *Dispatcher {
	config = populateConfig(config)
	return &Dispatcher{
		config:       config,
		writer:       writer,
		newSession:   newSession,
		resetter:     newStatelessResetter(config.StatelessResetKey),
		rand:         utils.NewRand(),
		sessions:     make(map[string]Session),
		timeWait:     make(map[string]*timeWaitRecord),
		replyLimiter: rate.NewLimiter(rate.Limit(config.MaxStatelessRepliesPerSecond), config.MaxStatelessRepliesPerSecond),
		logger:       config.Logger.With(slog.String("component", "dispatcher")),
		tracer:       config.Tracer,
	}
}

// StartPass resets the per-pass session creation budget. The shard loop calls
// it once per batch of socket readiness, before the OnPacket calls of that batch.
func (d *Dispatcher) StartPass() {
	d.newSessionsThisPass = 0
}

// OnPacket routes a single datagram. It parses only the minimal unencrypted
// header needed to extract the destination connection ID; everything beyond
// that is the session's business.
func (d *Dispatcher) OnPacket(p ReceivedPacket) {
	connID, err := wire.ParseConnectionID(p.Data, d.config.ConnIDLen)
	if err != nil {
		d.tracer.droppedPacket(p.RemoteAddr, DropHeaderParseError, p.Size())
		d.logger.Debug("dropping packet, failed to parse connection ID", slog.Any("remote", p.RemoteAddr))
		return
	}

	if sess, ok := d.sessions[string(connID)]; ok {
		// Forward unconditionally. The session rejects malformed or
		// unauthenticated content itself.
		sess.HandlePacket(p)
		return
	}

	if rec, ok := d.timeWait[string(connID)]; ok {
		if !rec.isExpired(p.RcvTime) {
			if rec.shouldRespond() {
				d.sendStatelessReset(rec.token, p)
			}
			return
		}
		// TTL elapsed, the connection ID is unknown again.
		delete(d.timeWait, string(connID))
	}

	d.handleUnknownConnectionID(connID, p)
}

func (d *Dispatcher) handleUnknownConnectionID(connID protocol.ConnectionID, p ReceivedPacket) {
	if !wire.IsLongHeader(p.Data[0]) {
		// A short header packet for a connection we know nothing about.
		// If we can derive its token, a stateless reset tells the peer to
		// give up on the connection; otherwise there is nothing useful to say.
		if d.resetter.Enabled() {
			d.sendStatelessReset(d.resetter.Token(connID), p)
			return
		}
		d.tracer.droppedPacket(p.RemoteAddr, DropUnexpectedPacket, p.Size())
		return
	}

	v, err := wire.ParseVersion(p.Data)
	if err != nil || v == 0 {
		// runt, or a version negotiation packet sent to a server
		d.tracer.droppedPacket(p.RemoteAddr, DropUnexpectedPacket, p.Size())
		return
	}
	if !protocol.IsSupportedVersion(d.config.Versions, v) {
		if p.Size() < protocol.MinUnknownVersionPacketSize {
			// too small to be a first packet, and answering runts would make
			// us an amplifier
			d.tracer.droppedPacket(p.RemoteAddr, DropUnexpectedPacket, p.Size())
			return
		}
		d.sendVersionNegotiation(p)
		return
	}
	if !wire.IsPotentialQUICPacket(p.Data[0]) || !wire.IsLongHeaderInitial(p.Data[0], v) {
		// Handshake or 0-RTT packets for unknown connections are reordered
		// leftovers; they can't start a connection.
		d.tracer.droppedPacket(p.RemoteAddr, DropUnexpectedPacket, p.Size())
		return
	}
	if p.Size() < protocol.MinInitialPacketSize {
		d.tracer.droppedPacket(p.RemoteAddr, DropRuntInitial, p.Size())
		d.logger.Debug("dropping too small Initial packet",
			slog.Any("remote", p.RemoteAddr),
			slog.Int64("size", int64(p.Size())),
		)
		return
	}

	if d.newSessionsThisPass >= d.config.MaxNewSessionsPerPass {
		// Stateless drop, no reply. The client retransmits its Initial.
		d.tracer.droppedPacket(p.RemoteAddr, DropSessionLimitReached, p.Size())
		return
	}

	sess, err := d.newSession(connID, v, p.RemoteAddr)
	if err != nil {
		d.tracer.droppedPacket(p.RemoteAddr, DropSessionRejected, p.Size())
		d.logger.Debug("session constructor rejected connection",
			slog.Any("remote", p.RemoteAddr),
			slog.Any("reason", err),
		)
		return
	}
	d.newSessionsThisPass++
	d.sessions[string(connID)] = sess
	d.tracer.sessionStarted(p.RemoteAddr, connID, v)
	d.logger.Debug("created new session",
		slog.String("conn_id", connID.String()),
		slog.String("version", v.String()),
		slog.Any("remote", p.RemoteAddr),
	)
	sess.HandlePacket(p)
}

// RegisterConnectionID adds an additional connection ID routing to a session.
// Sessions call this during connection migration. Remapping an ID that
// already routes to a different session is refused: that's a bug or an
// attack, never a valid handover.
func (d *Dispatcher) RegisterConnectionID(connID protocol.ConnectionID, sess Session) error {
	if existing, ok := d.sessions[string(connID)]; ok && existing != sess {
		d.logger.Error("refusing to remap connection ID to a different session",
			slog.String("conn_id", connID.String()),
		)
		return ErrConnectionIDInUse
	}
	d.sessions[string(connID)] = sess
	return nil
}

// UnregisterConnectionID removes a single connection ID. The session keeps
// running under its remaining IDs.
func (d *Dispatcher) UnregisterConnectionID(connID protocol.ConnectionID) {
	delete(d.sessions, string(connID))
}

// CloseSession removes all of the session's connection IDs from the routing
// table and installs a time-wait record for each, so retransmissions get a
// stateless reset for the duration of the TTL.
//
// The session must have stopped its liveness detection (and thereby cancelled
// its alarms) before this is called. The dispatcher does not destroy the
// session; it only drops its references.
func (d *Dispatcher) CloseSession(sess Session, reason error) {
	expiry := time.Now().Add(d.config.TimeWaitTTL)
	for _, connID := range sess.ConnectionIDs() {
		if existing, ok := d.sessions[string(connID)]; !ok || existing != sess {
			continue
		}
		delete(d.sessions, string(connID))
		d.timeWait[string(connID)] = newTimeWaitRecord(d.resetter.Token(connID), expiry)
		d.tracer.sessionClosed(connID)
	}
	d.logger.Debug("closed session", slog.Any("reason", reason))
}

// CollectTimeWait drops expired time-wait records. The shard loop calls it periodically.
func (d *Dispatcher) CollectTimeWait(now time.Time) {
	for id, rec := range d.timeWait {
		if rec.isExpired(now) {
			delete(d.timeWait, id)
		}
	}
}

// Close destroys all remaining sessions and empties the tables.
func (d *Dispatcher) Close() {
	destroyed := make(map[Session]struct{}, len(d.sessions))
	for _, sess := range d.sessions {
		if _, ok := destroyed[sess]; ok {
			continue
		}
		destroyed[sess] = struct{}{}
		sess.Destroy(ErrShardClosed)
	}
	d.sessions = make(map[string]Session)
	d.timeWait = make(map[string]*timeWaitRecord)
}

// NumSessions returns the number of connection IDs routing to live sessions.
func (d *Dispatcher) NumSessions() int { return len(d.sessions) }

// NumTimeWaitRecords returns the number of connection IDs in time-wait.
func (d *Dispatcher) NumTimeWaitRecords() int { return len(d.timeWait) }

func (d *Dispatcher) sendVersionNegotiation(p ReceivedPacket) {
	if !d.replyLimiter.AllowN(p.RcvTime, 1) {
		d.tracer.droppedPacket(p.RemoteAddr, DropRateLimited, p.Size())
		return
	}
	if d.writer.IsWriteBlocked() {
		d.tracer.droppedPacket(p.RemoteAddr, DropWriteBlocked, p.Size())
		return
	}
	dest, src, err := wire.ParseArbitraryLenConnectionIDs(p.Data)
	if err != nil {
		d.tracer.droppedPacket(p.RemoteAddr, DropHeaderParseError, p.Size())
		return
	}
	d.logger.Debug("sending version negotiation packet",
		slog.Any("remote", p.RemoteAddr),
		slog.String("dest_conn_id", dest.String()),
		slog.String("src_conn_id", src.String()),
	)
	// Src and dest are swapped in the reply.
	reply := wire.ComposeVersionNegotiation(src, dest, d.config.Versions)
	res := d.writer.WritePacket(reply, p.LocalAddr, p.RemoteAddr)
	if res.Status == WriteStatusError {
		// a single failed write, not a reason to do anything drastic
		d.logger.Debug("failed to send version negotiation packet", slog.Any("error", res.Err))
		return
	}
	if res.Status == WriteStatusOK {
		d.tracer.sentVersionNegotiation(p.RemoteAddr, src, dest)
	}
}

func (d *Dispatcher) sendStatelessReset(token protocol.StatelessResetToken, p ReceivedPacket) {
	// A reset must be smaller than the packet it answers, both to avoid
	// amplification and to break reset loops between two servers.
	if len(p.Data) <= protocol.MinStatelessResetSize {
		d.tracer.droppedPacket(p.RemoteAddr, DropUnexpectedPacket, p.Size())
		return
	}
	if !d.replyLimiter.AllowN(p.RcvTime, 1) {
		d.tracer.droppedPacket(p.RemoteAddr, DropRateLimited, p.Size())
		return
	}
	if d.writer.IsWriteBlocked() {
		d.tracer.droppedPacket(p.RemoteAddr, DropWriteBlocked, p.Size())
		return
	}
	maxSize := len(p.Data) - 1
	size := protocol.MinStatelessResetSize
	if maxSize > size {
		size += int(d.rand.Int31n(int32(maxSize - size + 1)))
	}
	reply := wire.ComposeStatelessReset(token, size)
	d.logger.Debug("sending stateless reset", slog.Any("remote", p.RemoteAddr), slog.Int("size", len(reply)))
	res := d.writer.WritePacket(reply, p.LocalAddr, p.RemoteAddr)
	if res.Status == WriteStatusError {
		d.logger.Debug("failed to send stateless reset", slog.Any("error", res.Err))
		return
	}
	if res.Status == WriteStatusOK {
		d.tracer.sentStatelessReset(p.RemoteAddr, protocol.ByteCount(len(reply)))
	}
}
