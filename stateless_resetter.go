package quicmux

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"hash"

	"github.com/quicmux/quicmux/internal/protocol"
)

// statelessResetter derives stateless reset tokens from connection IDs.
type statelessResetter struct {
	enabled bool
	hasher  hash.Hash
}

func newStatelessResetter(key *StatelessResetKey) *statelessResetter {
	r := &statelessResetter{enabled: key != nil}
	if r.enabled {
		r.hasher = hmac.New(sha256.New, key[:])
	}
	return r
}

func (r *statelessResetter) Enabled() bool { return r.enabled }

func (r *statelessResetter) Token(connID protocol.ConnectionID) protocol.StatelessResetToken {
	var token protocol.StatelessResetToken
	if !r.enabled {
		// Return a random stateless reset token.
		// By using a random token, an off-path attacker won't be able to disrupt the connection.
		rand.Read(token[:])
		return token
	}
	r.hasher.Write(connID.Bytes())
	copy(token[:], r.hasher.Sum(nil))
	r.hasher.Reset()
	return token
}
