//go:build linux || darwin || freebsd

package quicmux

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isSendBufferFull(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}
