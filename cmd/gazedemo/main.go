package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"vrgaze/internal/config"
	"vrgaze/internal/game"
	_ "vrgaze/internal/scripts"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config: %+v", err)
	}
	if len(os.Args) > 1 {
		cfg.Scene = os.Args[1]
	}
	cfg.LogSummary()

	g := game.New(cfg)
	if err := g.Run(); err != nil {
		log.Fatalf("Game: %+v", err)
	}
}
