package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultBufferSize = 1024
	minBufferSize     = 16
	maxBufferSize     = 65536
)

type config struct {
	bindAddress  string
	bufferSize   int
	reportFormat ReportFormat
}

func parse() (*config, error) {
	format, err := parseReportFormat()
	if err != nil {
		return nil, err
	}

	return &config{
		bindAddress:  getenv("BIND_ADDRESS", "127.0.0.1:8080"),
		bufferSize:   parseBufferSize(),
		reportFormat: format,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseReportFormat() (ReportFormat, error) {
	switch strings.ToLower(getenv("REPORT_FORMAT", "text")) {
	case "text":
		return ReportText, nil
	case "json":
		return ReportJSON, nil
	default:
		return 0, fmt.Errorf("invalid REPORT_FORMAT value")
	}
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", strconv.Itoa(defaultBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minBufferSize || size > maxBufferSize {
		log.Printf("Invalid BUFFER_SIZE, falling back to %d", defaultBufferSize)
		return defaultBufferSize
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
