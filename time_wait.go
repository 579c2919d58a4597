package quicmux

import (
	"math/bits"
	"time"

	"github.com/quicmux/quicmux/internal/protocol"
)

// A timeWaitRecord is what remains of a closed session: a connection ID that
// answers retransmitted packets with a stateless reset until the TTL elapses.
// It is owned exclusively by the dispatcher, never by a session.
type timeWaitRecord struct {
	token  protocol.StatelessResetToken
	expiry time.Time

	counter uint32
}

func newTimeWaitRecord(token protocol.StatelessResetToken, expiry time.Time) *timeWaitRecord {
	return &timeWaitRecord{token: token, expiry: expiry}
}

func (r *timeWaitRecord) isExpired(now time.Time) bool {
	return !now.Before(r.expiry)
}

// shouldRespond decides if the next retransmitted packet deserves a reply.
// Replies back off exponentially: only the 1st, 2nd, 4th, 8th, 16th, ...
// packet gets one, so a peer stuck in a retransmission loop doesn't turn
// this record into a packet generator.
func (r *timeWaitRecord) shouldRespond() bool {
	r.counter++
	return bits.OnesCount32(r.counter) == 1
}
