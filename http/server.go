package http

import (
	"bufio"
	"context"
	"log/slog"
	"net"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"staticd/filesystem"
)

const instrumentationName = "staticd/http"

// Server accepts connections and serves exactly one request on each:
// parse the request line, resolve it under the web root, respond, close.
// There is no keep-alive; the closing connection delimits the body.
type Server struct {
	Root   *filesystem.Root
	Logger *slog.Logger

	tracer   trace.Tracer
	requests metric.Int64Counter
}

func NewServer(root *filesystem.Root, logger *slog.Logger) (*Server, error) {
	requests, err := otel.Meter(instrumentationName).Int64Counter(
		"http.server.requests",
		metric.WithDescription("Responses sent, by status code"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	return &Server{
		Root:     root,
		Logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		requests: requests,
	}, nil
}

// ListenAndServe listens on addr and serves until ctx is done or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	return s.Serve(ctx, listener)
}

// Serve accepts until the listener closes, one goroutine per connection.
// Connections do not share any state, so goroutines never synchronize.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.ServeConn(ctx, conn)
	}
}

// ServeConn handles a single request/response cycle and closes conn.
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	id := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, "http.request", trace.WithAttributes(
		attribute.String("conn.id", id),
		attribute.String("net.peer", conn.RemoteAddr().String()),
	))
	defer span.End()

	var (
		req    Request
		status uint16
		err    error
	)
	if perr := req.Parse(bufio.NewReaderSize(conn, DefaultReadBufferSize)); perr != nil {
		status = StatusBadRequest
		err = WriteMessage(conn, response400)
		s.Logger.WarnContext(ctx, "bad request", "conn.id", id, "error", perr)
	} else {
		status, err = SendResponse(conn, s.Root.Resolve(req.Path))
	}

	span.SetAttributes(
		attribute.String("http.path", req.Path),
		attribute.Int("http.status", int(status)),
	)
	s.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("http.status", int(status)),
	))

	if err != nil {
		s.Logger.ErrorContext(ctx, "response aborted",
			"conn.id", id, "path", req.Path, "status", status, "error", err)
		return
	}
	s.Logger.InfoContext(ctx, "request served",
		"conn.id", id, "method", req.Method, "path", req.Path,
		"status", status, "reason", StatusText(status))
}
