package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ShazimR/request-line/internal/method"
	"github.com/ShazimR/request-line/internal/query"
	"github.com/indigo-web/utils/uf"
	jsoniter "github.com/json-iterator/go"
)

const protocolHTTP11 = "HTTP/1.1"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ParseError uint8

const (
	ErrMalformedRequestLine ParseError = iota + 1
	ErrInvalidEncoding
	ErrUnsupportedProtocol
	ErrMethodNotRecognized
)

func (e ParseError) Error() string {
	switch e {
	case ErrMalformedRequestLine:
		return "malformed request-line"
	case ErrInvalidEncoding:
		return "invalid encoding"
	case ErrUnsupportedProtocol:
		return "unsupported http version"
	case ErrMethodNotRecognized:
		return "unrecognized method"
	default:
		return "unknown parse error"
	}
}

// Request is built from the request line only. Path and query share memory
// with the buffer passed to Parse, so the buffer must not be modified while
// the request is in use; see Clone.
type Request struct {
	path   string
	query  *query.QueryString
	method method.Method
}

func (r *Request) Path() string {
	return r.path
}

func (r *Request) Method() method.Method {
	return r.method
}

// Query returns nil when the request target has no '?'.
func (r *Request) Query() *query.QueryString {
	return r.query
}

// Clone returns a request that no longer references the parsed buffer.
func (r *Request) Clone() *Request {
	c := &Request{
		path:   strings.Clone(r.path),
		method: r.method,
	}
	if r.query != nil {
		c.query = r.query.Clone()
	}

	return c
}

func (r *Request) MarshalJSON() ([]byte, error) {
	out := struct {
		Method string             `json:"method"`
		Path   string             `json:"path"`
		Query  *query.QueryString `json:"query,omitempty"`
	}{
		Method: r.method.String(),
		Path:   r.path,
		Query:  r.query,
	}

	return json.Marshal(out)
}

// Parse reads the request line at the start of buf, e.g.
//
//	GET /search?name=abc&sort=1 HTTP/1.1\r\n
//
// Everything after the protocol token is ignored.
func Parse(buf []byte) (*Request, error) {
	if !utf8.Valid(buf) {
		return nil, ErrInvalidEncoding
	}

	text := uf.B2S(buf)

	methodToken, rest, ok := nextWord(text)
	if !ok {
		return nil, ErrMalformedRequestLine
	}
	path, rest, ok := nextWord(rest)
	if !ok {
		return nil, ErrMalformedRequestLine
	}
	protocol, _, ok := nextWord(rest)
	if !ok {
		return nil, ErrMalformedRequestLine
	}

	if protocol != protocolHTTP11 {
		return nil, ErrUnsupportedProtocol
	}

	m, err := method.Parse(methodToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMethodNotRecognized, err)
	}

	var qs *query.QueryString
	if i := strings.IndexByte(path, '?'); i != -1 {
		qs = query.Parse(path[i+1:])
		path = path[:i]
	}

	return &Request{
		path:   path,
		query:  qs,
		method: m,
	}, nil
}

// nextWord splits s at the first space or carriage return. ok is false
// when s contains neither.
func nextWord(s string) (word, rest string, ok bool) {
	i := strings.IndexAny(s, " \r")
	if i == -1 {
		return "", "", false
	}

	return s[:i], s[i+1:], true
}
