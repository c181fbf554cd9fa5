package http

import (
	"net"
	"os"
)

// SendResponse serves the file at path over conn as one HTTP/1.0 response.
// A path that cannot be opened, or that is anything but a regular file,
// gets the fixed 404 response; missing, forbidden and otherwise unopenable
// are deliberately indistinguishable. Directories are never listed.
//
// The returned status is the one put on the wire. A non-nil error means the
// response was cut short mid-stream; bytes already sent stay sent, and
// closing the connection is the caller's job either way.
func SendResponse(conn net.Conn, path string) (uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return StatusNotFound, WriteMessage(conn, response404)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return StatusNotFound, WriteMessage(conn, response404)
	}

	if err := WriteMessage(conn, status200OK); err != nil {
		return StatusOK, err
	}
	if err := WriteMessage(conn, contentTypePrefix); err != nil {
		return StatusOK, err
	}
	if err := WriteMessage(conn, []byte(ContentType(path))); err != nil {
		return StatusOK, err
	}
	if err := WriteMessage(conn, headersEnd); err != nil {
		return StatusOK, err
	}

	return StatusOK, transferBody(conn, f, fi.Size())
}
