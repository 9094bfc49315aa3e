package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/virtualstick/config"
	"github.com/meghashyamc/virtualstick/game"
	"github.com/meghashyamc/virtualstick/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	g, err := game.NewGame(cfg, logger.New(cfg.GetLogLevel()))
	if err != nil {
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		slog.Error("error running game", "err", err)
		os.Exit(1)
	}
}
