//go:build linux

package http

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// maxSendfileChunk caps a single sendfile call. The kernel may still
// transfer less; the loop picks up at the updated offset.
const maxSendfileChunk = 4 << 20

// sendFile drives unix.Sendfile until size bytes of f left through the
// socket. handled is false when the descriptor pair cannot take the
// in-kernel path at all, in which case nothing has been written yet and the
// caller falls back to the user-space loop.
func sendFile(sc syscall.Conn, f *os.File, size int64) (handled bool, err error) {
	raw, err := sc.SyscallConn()
	if err != nil {
		return false, nil
	}

	var (
		off  int64
		sent int64
		serr error
	)
	for sent < size {
		chunk := maxSendfileChunk
		if remain := size - sent; remain < int64(chunk) {
			chunk = int(remain)
		}
		var n int
		werr := raw.Write(func(fd uintptr) bool {
			// Sendfile advances off by the bytes transferred.
			n, serr = unix.Sendfile(int(fd), int(f.Fd()), &off, chunk)
			return serr != unix.EAGAIN
		})
		if werr != nil {
			return true, fmt.Errorf("http: sendfile: %w", werr)
		}
		if serr != nil {
			if sent == 0 && (serr == unix.EINVAL || serr == unix.ENOSYS) {
				// Kernel refused this descriptor pair outright.
				return false, nil
			}
			return true, fmt.Errorf("http: sendfile: %w", serr)
		}
		if n == 0 {
			return true, ErrTruncatedFile
		}
		sent += int64(n)
	}
	return true, nil
}
