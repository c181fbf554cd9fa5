package http

import (
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// respond runs SendResponse against one end of an in-memory connection and
// returns everything the client end observed.
func respond(t *testing.T, path string) (out []byte, status uint16, err error) {
	t.Helper()

	client, server := net.Pipe()
	done := make(chan struct{})
	var readErr error
	go func() {
		out, readErr = io.ReadAll(client)
		close(done)
	}()

	status, err = SendResponse(server, path)
	require.NoError(t, server.Close())
	<-done
	require.NoError(t, readErr)
	return out, status, err
}

func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestSendResponseMissingFile(t *testing.T) {
	out, status, err := respond(t, filepath.Join(t.TempDir(), "missing.css"))
	require.NoError(t, err)
	require.Equal(t, StatusNotFound, status)
	require.Equal(t, []byte("HTTP/1.0 404 Not Found\r\n\r\n"), out)
}

func TestSendResponseDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inside.html"), []byte("x"), 0o644))

	out, status, err := respond(t, dir)
	require.NoError(t, err)
	require.Equal(t, StatusNotFound, status)
	require.Equal(t, []byte("HTTP/1.0 404 Not Found\r\n\r\n"), out, "directories are never listed")
}

func TestSendResponseRegularFile(t *testing.T) {
	content := []byte("0123456789")
	path := writeFixture(t, "index.html", content)

	out, status, err := respond(t, path)
	require.NoError(t, err)
	require.Equal(t, StatusOK, status)
	want := append([]byte("HTTP/1.0 200 OK\r\nContent-Type: text/html\r\n\r\n"), content...)
	require.Equal(t, want, out, "no extra bytes before or after the body")
}

func TestSendResponseJPEG(t *testing.T) {
	path := writeFixture(t, "photo.jpg", []byte{0xff, 0xd8, 0xff, 0xe0})

	out, _, err := respond(t, path)
	require.NoError(t, err)
	require.Equal(t,
		append([]byte("HTTP/1.0 200 OK\r\nContent-Type: image/jpeg\r\n\r\n"), 0xff, 0xd8, 0xff, 0xe0),
		out)
}

func TestSendResponseNoExtension(t *testing.T) {
	path := writeFixture(t, "script", []byte("#!/bin/sh\n"))

	out, _, err := respond(t, path)
	require.NoError(t, err)
	require.Equal(t,
		append([]byte("HTTP/1.0 200 OK\r\nContent-Type: application/octet-stream\r\n\r\n"), "#!/bin/sh\n"...),
		out)
}

func TestSendResponseEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.css", nil)

	out, status, err := respond(t, path)
	require.NoError(t, err)
	require.Equal(t, StatusOK, status)
	require.Equal(t, []byte("HTTP/1.0 200 OK\r\nContent-Type: text/css\r\n\r\n"), out)
}

func TestSendResponseIdempotent(t *testing.T) {
	path := writeFixture(t, "page.html", []byte("<html>same every time</html>"))

	first, _, err := respond(t, path)
	require.NoError(t, err)
	second, _, err := respond(t, path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// flakyConn lets a fixed number of writes through, then fails every call.
type flakyConn struct {
	net.Conn
	writesLeft int
}

var errInjected = errors.New("injected write failure")

func (c *flakyConn) Write(p []byte) (int, error) {
	if c.writesLeft == 0 {
		return 0, errInjected
	}
	c.writesLeft--
	return c.Conn.Write(p)
}

// A write failure at any emission step must stop the response right there:
// the client sees exactly the fragments sent before the failing call.
func TestSendResponseWriteFailureStopsEmission(t *testing.T) {
	content := []byte("body bytes")
	path := writeFixture(t, "page.html", content)

	fragments := [][]byte{
		[]byte("HTTP/1.0 200 OK\r\n"),
		[]byte("Content-Type: "),
		[]byte("text/html"),
		[]byte("\r\n\r\n"),
	}

	for failAt := 0; failAt <= len(fragments); failAt++ {
		client, server := net.Pipe()
		done := make(chan struct{})
		var out []byte
		go func() {
			out, _ = io.ReadAll(client)
			close(done)
		}()

		status, err := SendResponse(&flakyConn{Conn: server, writesLeft: failAt}, path)
		require.NoError(t, server.Close())
		<-done

		// failAt == len(fragments) means the headers went out in full and
		// the body transfer is the failing step.
		require.Equal(t, StatusOK, status)
		// io.ReadAll never returns a nil slice, so start from an empty
		// non-nil slice to compare equal when zero fragments went out.
		want := []byte{}
		for _, frag := range fragments[:failAt] {
			want = append(want, frag...)
		}
		require.ErrorIs(t, err, errInjected, "fail at fragment %d", failAt)
		require.Equal(t, want, out, "fail at fragment %d", failAt)
	}
}
