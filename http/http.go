package http

const (
	// MaxRequestSize bounds the request head (request line plus headers).
	// The server never reads a body, so anything larger is a bad request.
	MaxRequestSize = 2 * 1024

	DefaultReadBufferSize = 4096

	// TransferBufferSize is the chunk size of the user-space body copy
	// loop, used when the in-kernel copy path is unavailable.
	TransferBufferSize = 64 * 1024
)

// Pre-computed wire fragments. Each one is a single protocol fragment
// handed to WriteMessage as-is.
var (
	status200OK       = []byte("HTTP/1.0 200 OK\r\n")
	contentTypePrefix = []byte("Content-Type: ")
	headersEnd        = []byte("\r\n\r\n")
	response404       = []byte("HTTP/1.0 404 Not Found\r\n\r\n")
	response400       = []byte("HTTP/1.0 400 Bad Request\r\n\r\n")
)
