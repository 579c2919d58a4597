package quicmux

import "errors"

var (
	// ErrConnectionIDInUse is returned when registering a connection ID that
	// already routes to a different session. This indicates a bug in the
	// caller or an attack, never a valid migration.
	ErrConnectionIDInUse = errors.New("connection ID already registered to a different session")
	// ErrShardClosed is returned when packets are handed to a shard that was shut down.
	ErrShardClosed = errors.New("shard closed")
)
