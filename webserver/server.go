package webserver

import (
	"bufio"
	"embed"
	"fmt"
	"net"
	"strings"
	"time"
)

//go:embed hello.html 404.html
var pages embed.FS

// Server serves the two pages over raw TCP connections.
type Server struct {
	pool *Pool

	// SleepFor is the artificial delay of the /sleep route. Tests shrink
	// it; the binary keeps the demonstrative five seconds.
	SleepFor time.Duration
}

// NewServer wires a server to an existing pool.
func NewServer(pool *Pool) *Server {
	return &Server{pool: pool, SleepFor: 5 * time.Second}
}

// Serve accepts connections until the listener closes, handing each one to
// the pool. The accept error on a closed listener is the normal way out of
// the loop, so it is returned rather than retried.
func (s *Server) Serve(l net.Listener) error {
	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		s.pool.Submit(func() {
			s.handle(conn)
		})
	}
}

// handle reads the request line and writes one of the canned responses.
// Everything past the request line is ignored, which is as much HTTP as
// the exercise needs.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	requestLine, err := reader.ReadString('\n')
	if err != nil {
		return
	}

	var status, page string
	switch strings.TrimSpace(requestLine) {
	case "GET / HTTP/1.1":
		status, page = "HTTP/1.1 200 OK", "hello.html"
	case "GET /sleep HTTP/1.1":
		time.Sleep(s.SleepFor)
		status, page = "HTTP/1.1 200 OK", "hello.html"
	default:
		status, page = "HTTP/1.1 404 NOT FOUND", "404.html"
	}

	body, err := pages.ReadFile(page)
	if err != nil {
		// The pages are embedded; failing to read one is a build bug.
		panic(err)
	}

	fmt.Fprintf(conn, "%s\r\nContent-Length: %d\r\n\r\n%s", status, len(body), body)
}
