package http

const (
	StatusOK         uint16 = 200 // RFC 7231, 6.3.1
	StatusBadRequest uint16 = 400 // RFC 7231, 6.5.1
	StatusNotFound   uint16 = 404 // RFC 7231, 6.5.4
)

var statusMessages = []string{
	StatusOK:         "OK",
	StatusBadRequest: "Bad Request",
	StatusNotFound:   "Not Found",
}

// StatusText returns the reason phrase for code, or an empty string for a
// code this server never emits.
func StatusText(code uint16) string {
	if int(code) < len(statusMessages) {
		return statusMessages[code]
	}
	return ""
}
