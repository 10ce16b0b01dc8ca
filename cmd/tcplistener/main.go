package main

import (
	"log"
	"os"

	"github.com/ShazimR/request-line/internal/config"
	"github.com/ShazimR/request-line/internal/server"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server.Run(cfg.BindAddress(), newReporter(os.Stdout, cfg.ReportFormat()), cfg.BufferSize())
}
