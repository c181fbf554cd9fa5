package http

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

var (
	ErrMalformedRequestLine = errors.New("http: malformed request line")
	ErrRequestTooLarge      = errors.New("http: request head exceeds limit")
)

// Request carries the pieces of the request line this server cares about.
// Header lines are read off the wire and discarded: a static GET needs none
// of them, and close-per-request leaves nothing to negotiate.
type Request struct {
	Method   string
	Path     string
	Protocol string
}

// Parse reads one request head from br: the request line into the struct,
// then header lines until the blank line, bounded by MaxRequestSize in
// total.
func (req *Request) Parse(br *bufio.Reader) error {
	budget := MaxRequestSize

	line, err := readLine(br, &budget)
	if err != nil {
		return err
	}
	// Clients may pad the request line with extra spaces.
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return ErrMalformedRequestLine
	}
	path, err := url.PathUnescape(parts[1])
	if err != nil {
		return ErrMalformedRequestLine
	}
	req.Method = parts[0]
	req.Path = path
	req.Protocol = parts[2]

	// Drain the headers; the blank line ends the head.
	for {
		line, err := readLine(br, &budget)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
	}
}

func readLine(br *bufio.Reader, budget *int) (string, error) {
	line, err := br.ReadString('\n')
	*budget -= len(line)
	if *budget < 0 {
		return "", ErrRequestTooLarge
	}
	if err != nil {
		if err == io.EOF {
			return "", fmt.Errorf("http: request cut short: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("http: read request: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
