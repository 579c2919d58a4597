package wire

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/quicmux/quicmux/internal/protocol"
)

// ComposeVersionNegotiation composes a Version Negotiation packet.
// The connection IDs are the ones from the packet being answered, so the
// destination here is the peer's source connection ID and vice versa.
func ComposeVersionNegotiation(destConnID, srcConnID protocol.ConnectionID, versions []protocol.Version) []byte {
	greasedVersions := protocol.GetGreasedVersions(versions)
	expectedLen := 1 /* type byte */ + 4 /* version field */ + 1 /* dest conn ID length field */ + destConnID.Len() + 1 /* src conn ID length field */ + srcConnID.Len() + len(greasedVersions)*4
	b := make([]byte, 1+4 /* type byte and version field */, expectedLen)
	_, _ = rand.Read(b[:1]) // ignore the error here. Failure to read random data only means that the first byte is not random.
	b[0] |= 0x80
	// The next 4 bytes are left at 0 (version number).
	b = append(b, uint8(destConnID.Len()))
	b = append(b, destConnID.Bytes()...)
	b = append(b, uint8(srcConnID.Len()))
	b = append(b, srcConnID.Bytes()...)
	for _, v := range greasedVersions {
		b = binary.BigEndian.AppendUint32(b, uint32(v))
	}
	return b
}
