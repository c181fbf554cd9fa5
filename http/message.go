package http

import (
	"fmt"
	"io"
)

// WriteMessage writes msg to w in full. A single Write is not guaranteed to
// accept the whole buffer, so it keeps writing from where the last call
// left off until every byte went out or the first error occurs. An empty
// message is a successful no-op.
//
// Errors are never retried: a socket that rejected a write is dead for the
// rest of the response.
func WriteMessage(w io.Writer, msg []byte) error {
	for len(msg) > 0 {
		n, err := w.Write(msg)
		if err != nil {
			return fmt.Errorf("http: write message: %w", err)
		}
		msg = msg[n:]
	}
	return nil
}
