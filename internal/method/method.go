package method

import "fmt"

type Method uint8

const (
	Unknown Method = iota
	GET
	DELETE
	POST
	PUT
	HEAD
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var ErrMethodNotRecognized = fmt.Errorf("method not recognized")

// List contains every recognized method in declaration order. Unknown is not included.
var List = []Method{GET, DELETE, POST, PUT, HEAD, CONNECT, OPTIONS, TRACE, PATCH}

var names = [...]string{
	Unknown: "UNKNOWN",
	GET:     "GET",
	DELETE:  "DELETE",
	POST:    "POST",
	PUT:     "PUT",
	HEAD:    "HEAD",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

func (m Method) String() string {
	if int(m) >= len(names) {
		return names[Unknown]
	}

	return names[m]
}

func (m Method) IsValid() bool {
	return m != Unknown && int(m) < len(names)
}

// Parse matches token exactly (case-sensitive) against the recognized methods.
func Parse(token string) (Method, error) {
	switch len(token) {
	case 3:
		if token == "GET" {
			return GET, nil
		} else if token == "PUT" {
			return PUT, nil
		}
	case 4:
		if token == "POST" {
			return POST, nil
		} else if token == "HEAD" {
			return HEAD, nil
		}
	case 5:
		if token == "PATCH" {
			return PATCH, nil
		} else if token == "TRACE" {
			return TRACE, nil
		}
	case 6:
		if token == "DELETE" {
			return DELETE, nil
		}
	case 7:
		if token == "CONNECT" {
			return CONNECT, nil
		} else if token == "OPTIONS" {
			return OPTIONS, nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrMethodNotRecognized, token)
}
