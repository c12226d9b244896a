package main

import (
	"github.com/bookwormapp/bookworm/internal/config"
	"github.com/bookwormapp/bookworm/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
