//go:build tools

package quicmux

import (
	_ "golang.org/x/tools/imports"
)
