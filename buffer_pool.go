package quicmux

import (
	"sync"

	"github.com/quicmux/quicmux/internal/protocol"
)

var bufferPool sync.Pool

func getPacketBuffer() []byte {
	return bufferPool.Get().([]byte)[:protocol.MaxPacketBufferSize]
}

func putPacketBuffer(b []byte) {
	if cap(b) != protocol.MaxPacketBufferSize {
		panic("putPacketBuffer called with packet of wrong size!")
	}
	bufferPool.Put(b[:0]) //nolint:staticcheck // the slice header allocation is amortized by the pool
}

func init() {
	bufferPool.New = func() any {
		return make([]byte, 0, protocol.MaxPacketBufferSize)
	}
}
