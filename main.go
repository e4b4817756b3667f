package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"grid-snake/ai"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui"
	"grid-snake/ui/terminal"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	width := flag.Int("width", 0, "Surface width in pixels")
	height := flag.Int("height", 0, "Surface height in pixels")
	cells := flag.Int("cells", 0, "Grid cells per axis")
	tick := flag.Int("speed", 0, "Milliseconds between snake moves (lower = faster)")
	spawn := flag.Int("spawn", 0, "Milliseconds between food spawn attempts")
	backend := flag.String("backend", "", "Renderer: window or terminal")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent play")
	logFile := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	// Flags win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "cells":
			cfg.Cells = *cells
		case "speed":
			cfg.TickInterval = time.Duration(*tick) * time.Millisecond
		case "spawn":
			cfg.SpawnInterval = time.Duration(*spawn) * time.Millisecond
		case "backend":
			cfg.Backend = *backend
		case "autopilot":
			cfg.Autopilot = *autopilot
		case "log":
			cfg.LogFile = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[APP] [FATAL] invalid configuration: %v", err)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(ctx, cfg)
	default:
		err = runWindow(ctx, cfg)
	}
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}

// setupLogging sends logs to the configured file. The terminal backend owns
// the screen, so without a file its logs are discarded.
func setupLogging(cfg config.Config) func() {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("[APP] [FATAL] failed to open log file: %v", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }
	}
	if cfg.Backend == config.BackendTerminal {
		log.SetOutput(io.Discard)
	}
	return func() {}
}

func sessionConfig(cfg config.Config) game.SessionConfig {
	sc := game.SessionConfig{
		TickInterval:  cfg.TickInterval,
		SpawnInterval: cfg.SpawnInterval,
	}
	if cfg.Autopilot {
		sc.Pilot = ai.NewQLearning(nil)
	}
	return sc
}

func runWindow(ctx context.Context, cfg config.Config) error {
	renderer := ui.NewRenderer(types.NewGrid(cfg.Width, cfg.Height, cfg.Cells))
	g := game.NewGame(cfg.Width, cfg.Height, cfg.Cells, game.WithRenderer(renderer))

	windowWidth, windowHeight := ui.WindowSize(g.Grid)
	rl.InitWindow(windowWidth, windowHeight, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	session := game.NewSession(g, sessionConfig(cfg))
	if err := session.Start(ctx); err != nil {
		return err
	}
	defer session.Stop()

	// The window stays open after game over to show the final frame
	for !rl.WindowShouldClose() {
		if ui.QuitPressed() || ctx.Err() != nil {
			break
		}
		for _, key := range ui.PressedKeys() {
			session.Input(key)
		}
		renderer.Draw(session.Snapshot())
	}
	return nil
}

func runTerminal(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	renderer := terminal.NewRenderer(screen, types.NewGrid(cfg.Width, cfg.Height, cfg.Cells))
	renderer.Clear()
	g := game.NewGame(cfg.Width, cfg.Height, cfg.Cells, game.WithRenderer(renderer))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := game.NewSession(g, sessionConfig(cfg))
	go terminal.Forward(screen, session.Input, cancel)

	if err := session.Start(ctx); err != nil {
		return err
	}
	defer session.Stop()

	// The game loop draws the score with every frame; after game over the
	// final frame stays up until the player quits
	<-ctx.Done()
	return nil
}
