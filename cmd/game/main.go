package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/rps-game/internal/config"
	"github.com/tatianab/rps-game/internal/engine"
	"github.com/tatianab/rps-game/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.NewEngine(ctx, cfg)
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}
	defer eng.Close()

	if err := tui.Run(eng, cfg.LogFile); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
