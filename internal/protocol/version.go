package protocol

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Version is a QUIC version number.
type Version uint32

// The version numbers, making grepping easier
const (
	VersionUnknown Version = math.MaxUint32
	Version1       Version = 0x1
	Version2       Version = 0x6b3343cf
)

// SupportedVersions lists the versions that the server supports,
// in descending order of preference.
var SupportedVersions = []Version{Version1, Version2}

func (vn Version) String() string {
	switch vn {
	case VersionUnknown:
		return "unknown"
	case Version1:
		return "v1"
	case Version2:
		return "v2"
	default:
		return fmt.Sprintf("%#x", uint32(vn))
	}
}

// IsSupportedVersion returns true if the server supports this version
func IsSupportedVersion(supported []Version, v Version) bool {
	for _, t := range supported {
		if t == v {
			return true
		}
	}
	return false
}

// GetGreasedVersions adds one reserved version number to a slice of version numbers,
// at a random position. It doesn't modify the supported slice.
func GetGreasedVersions(supported []Version) []Version {
	b := make([]byte, 1)
	_, _ = rand.Read(b)
	randPos := int(b[0]) % (len(supported) + 1)
	greased := make([]Version, len(supported)+1)
	copy(greased, supported[:randPos])
	greased[randPos] = generateReservedVersion()
	copy(greased[randPos+1:], supported[randPos:])
	return greased
}

// generateReservedVersion generates a reserved version number (v & 0x0f0f0f0f == 0x0a0a0a0a)
func generateReservedVersion() Version {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return Version(binary.BigEndian.Uint32(b)&0xf0f0f0f0 | 0x0a0a0a0a)
}
