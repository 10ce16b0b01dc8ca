package server

import (
	"errors"
	"log"
	"net"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/ShazimR/request-line/internal/request"
)

const DefaultBufferSize = 1024

type Handler interface {
	Handle(req *request.Request) []byte
}

// BadRequestHandler may be implemented by a Handler to answer requests
// whose request line could not be parsed.
type BadRequestHandler interface {
	HandleBadRequest(err error) []byte
}

type HandlerFunc func(req *request.Request) []byte

func (f HandlerFunc) Handle(req *request.Request) []byte {
	return f(req)
}

// Server accepts one connection at a time and performs a single bounded
// read on each before moving on to the next accept.
type Server struct {
	closed     atomic.Bool
	listener   net.Listener
	handler    Handler
	bufferSize int
}

func New(listener net.Listener, handler Handler, bufferSize int) *Server {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Server{
		listener:   listener,
		handler:    handler,
		bufferSize: bufferSize,
	}
}

func Listen(addr string, handler Handler, bufferSize int) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	return New(listener, handler, bufferSize), nil
}

// Run binds addr and serves until the process exits. Failing to bind
// terminates the process.
func Run(addr string, handler Handler, bufferSize int) {
	s, err := Listen(addr, handler, bufferSize)
	if err != nil {
		log.Fatalf("failed to bind %s: %v", addr, err)
	}

	log.Printf("Listening on %s", s.Addr())
	if err := s.Serve(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}

// Serve returns nil once the listener is closed; every other accept error
// is logged and accepting continues.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("Failed to establish a connection: %v", err)
			continue
		}

		s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("Failed to close connection: %v", err)
		}
	}()

	buf := make([]byte, s.bufferSize)
	// NOTE: a request line longer than the buffer, or split across
	// several writes by the peer, is only seen up to the first read
	n, err := conn.Read(buf)
	if n == 0 && err != nil {
		log.Printf("Failed to read from connection: %v", err)
		return
	}
	buf = buf[:n]

	log.Printf("Received a request: %s", strings.ToValidUTF8(string(buf), "�"))

	req, err := request.Parse(buf)
	if err != nil {
		log.Printf("Failed to parse request: %v", err)
		if bh, ok := s.handler.(BadRequestHandler); ok {
			s.write(conn, bh.HandleBadRequest(err))
		}
		return
	}

	if s.handler == nil {
		return
	}
	s.write(conn, s.handler.Handle(req))
}

func (s *Server) write(conn net.Conn, resp []byte) {
	if len(resp) == 0 {
		return
	}

	_, err := conn.Write(resp)
	if errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, net.ErrClosed) {
		return
	}
	if err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}
