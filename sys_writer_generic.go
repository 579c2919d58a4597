//go:build !linux && !darwin && !freebsd

package quicmux

// Other platforms don't give us a reliable "send buffer full" signal through
// the net package, so every write error is surfaced as a hard error there.
func isSendBufferFull(error) bool { return false }
