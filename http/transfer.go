package http

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
)

// ErrTruncatedFile reports that the file shrank while its body was being
// streamed; the size taken from its metadata can no longer be reached.
var ErrTruncatedFile = errors.New("http: file truncated during transfer")

// transferBody streams exactly size bytes of f to conn. TCP connections on
// platforms with an in-kernel copy primitive take the sendfile path; every
// other writer gets the user-space loop. Both share the same cursor
// semantics: a short transfer continues from the updated offset, the loop
// stops at size, and the first error aborts with whatever was already sent.
func transferBody(conn net.Conn, f *os.File, size int64) error {
	if size == 0 {
		return nil
	}
	if sc, ok := conn.(syscall.Conn); ok {
		handled, err := sendFile(sc, f, size)
		if handled {
			return err
		}
	}
	return copyBody(conn, f, size)
}

// copyBody is the portable transfer loop: read at the current offset, push
// the chunk through WriteMessage, advance.
func copyBody(w io.Writer, f *os.File, size int64) error {
	buf := make([]byte, TransferBufferSize)
	var sent int64
	for sent < size {
		chunk := size - sent
		if chunk > int64(len(buf)) {
			chunk = int64(len(buf))
		}
		n, err := f.ReadAt(buf[:chunk], sent)
		if n > 0 {
			if werr := WriteMessage(w, buf[:n]); werr != nil {
				return werr
			}
			sent += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				if sent == size {
					return nil
				}
				return ErrTruncatedFile
			}
			return fmt.Errorf("http: read body: %w", err)
		}
		if n == 0 {
			return ErrTruncatedFile
		}
	}
	return nil
}
