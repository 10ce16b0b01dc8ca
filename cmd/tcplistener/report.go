package main

import (
	"fmt"
	"io"
	"log"

	"github.com/ShazimR/request-line/internal/config"
	"github.com/ShazimR/request-line/internal/query"
	"github.com/ShazimR/request-line/internal/request"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// reporter prints every parsed request line and never answers the peer.
type reporter struct {
	out    io.Writer
	format config.ReportFormat
}

func newReporter(out io.Writer, format config.ReportFormat) *reporter {
	return &reporter{out: out, format: format}
}

func (r *reporter) Handle(req *request.Request) []byte {
	if r.format == config.ReportJSON {
		b, err := json.Marshal(req)
		if err != nil {
			log.Printf("Failed to encode request: %v", err)
			return nil
		}
		fmt.Fprintf(r.out, "%s\n", b)
		return nil
	}

	fmt.Fprintf(r.out, "Request Line:\n")
	fmt.Fprintf(r.out, "- Method:  %s\n", req.Method())
	fmt.Fprintf(r.out, "- Path:    %s\n", req.Path())
	if q := req.Query(); q != nil {
		fmt.Fprintf(r.out, "Query:\n")
		q.ForEach(func(key string, v query.Value) {
			fmt.Fprintf(r.out, "- %s: %s\n", key, v)
		})
	}

	return nil
}

func (r *reporter) HandleBadRequest(err error) []byte {
	fmt.Fprintf(r.out, "Bad request: %v\n", err)
	return nil
}
