package http

import "strings"

const extensionDelimiter = '.'

// DefaultContentType is reported when the path has no extension or one not
// in the table. Unknown content degrades to a generic binary response; it
// never fails the request.
const DefaultContentType = "application/octet-stream"

// contentTypes maps a file extension, delimiter included and
// case-sensitive, to the MIME type put in the Content-Type header.
var contentTypes = map[string]string{
	".html": "text/html",
	".jpg":  "image/jpeg",
	".js":   "text/javascript",
	".css":  "text/css",
}

// ContentType resolves the MIME type for path from its extension. The last
// delimiter wins, so "archive.tar.gz" matches on ".gz" and a dot inside an
// earlier path segment is ignored.
func ContentType(path string) string {
	i := strings.LastIndexByte(path, extensionDelimiter)
	if i < 0 {
		return DefaultContentType
	}
	if mime, ok := contentTypes[path[i:]]; ok {
		return mime
	}
	return DefaultContentType
}
