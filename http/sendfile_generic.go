//go:build !linux

package http

import (
	"os"
	"syscall"
)

// sendFile has no in-kernel path on this platform; the caller falls back to
// the user-space loop.
func sendFile(syscall.Conn, *os.File, int64) (bool, error) {
	return false, nil
}
