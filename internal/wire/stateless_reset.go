package wire

import (
	"crypto/rand"

	"github.com/quicmux/quicmux/internal/protocol"
)

// ComposeStatelessReset composes a stateless reset packet of the given size:
// a short header byte, random payload, and the token as the trailing 16 bytes.
// Sizes below protocol.MinStatelessResetSize are rounded up.
func ComposeStatelessReset(token protocol.StatelessResetToken, size int) []byte {
	if size < protocol.MinStatelessResetSize {
		size = protocol.MinStatelessResetSize
	}
	b := make([]byte, size)
	_, _ = rand.Read(b)
	// fixed bit set, long header bit cleared
	b[0] = (b[0] | 0x40) & 0x7f
	copy(b[len(b)-protocol.StatelessResetTokenLen:], token[:])
	return b
}
