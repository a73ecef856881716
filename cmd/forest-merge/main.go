//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"forest-merge/internal/app"
	"forest-merge/internal/audio"
	"forest-merge/internal/board"
	"forest-merge/internal/logging"
	"forest-merge/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	boardCfg := board.DefaultConfig()
	if cfg.Board != "" {
		if boardCfg, err = board.LoadConfig(cfg.Board); err != nil {
			log.Fatal("load board config", zap.Error(err))
		}
	}
	boardCfg.Seed = cfg.Seed

	player := audio.NewPlayer(0.4, log.Named("audio"))
	if err := player.Init(); err != nil {
		log.Warn("sound disabled", zap.Error(err))
	}
	defer player.Close()
	if cfg.Mute {
		player.ToggleMute()
	}

	session := app.NewSession(boardCfg, log, player)
	defer session.Close()
	game := app.New(session, player, cfg.TPS, log)

	ebiten.SetWindowTitle("Forest Merge")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(render.ScreenW*cfg.Scale, render.ScreenH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game exited", zap.Error(err))
	}
}
