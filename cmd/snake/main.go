package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Mshel/snake/internal/game"
	"github.com/Mshel/snake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type runnerFlags struct {
	config      game.Config
	scoresPath  string
	playerName  string
	autopilot   bool
	pilotKind   string
	pilotScript string
	logPath     string
}

func parseFlags() runnerFlags {
	f := runnerFlags{config: game.DefaultConfig()}
	flag.IntVar(&f.config.ScreenWidth, "width", f.config.ScreenWidth, "Field width in logical units")
	flag.IntVar(&f.config.ScreenHeight, "height", f.config.ScreenHeight, "Field height in logical units")
	flag.IntVar(&f.config.CellSize, "cell", f.config.CellSize, "Cell size in logical units")
	flag.IntVar(&f.config.FramesPerSecond, "fps", f.config.FramesPerSecond, "Frames per second")
	flag.Int64Var(&f.config.Seed, "seed", 0, "Random seed for food placement (0 uses the clock)")
	flag.BoolVar(&f.config.FoodAvoidsBody, "avoid-body", false, "Never place food on the snake")
	flag.StringVar(&f.scoresPath, "scores", "", "SQLite file for high scores (empty disables them)")
	flag.StringVar(&f.playerName, "name", os.Getenv("USER"), "Name recorded with your scores")
	flag.BoolVar(&f.autopilot, "autopilot", false, "Let a built-in pilot steer")
	flag.StringVar(&f.pilotKind, "pilot", "lua", "Built-in pilot for -autopilot: lua or hierarchical")
	flag.StringVar(&f.pilotScript, "pilot-script", "", "Lua pilot script, implies -autopilot")
	flag.StringVar(&f.logPath, "log", "", "Write logs to this file")
	flag.Parse()
	return f
}

func pilotFactory(f runnerFlags) (func() (game.Pilot, error), error) {
	switch {
	case f.pilotScript != "":
		return func() (game.Pilot, error) { return game.LoadLuaPilot(f.pilotScript) }, nil
	case !f.autopilot:
		return nil, nil
	case f.pilotKind == "hierarchical":
		return func() (game.Pilot, error) { return game.NewHierarchicalPilot(), nil }, nil
	case f.pilotKind == "lua":
		return func() (game.Pilot, error) { return game.NewDefaultLuaPilot() }, nil
	}
	return nil, fmt.Errorf("unknown pilot %q", f.pilotKind)
}

func run(f runnerFlags) error {
	if err := f.config.Validate(); err != nil {
		return err
	}

	newPilot, err := pilotFactory(f)
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	if f.logPath != "" {
		logFile, err := os.OpenFile(f.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetLevel(log.DebugLevel)
	}

	options := ui.Options{
		Config:     f.config,
		PlayerName: f.playerName,
		NewPilot:   newPilot,
		Logger:     log.Default(),
	}

	if f.scoresPath != "" {
		highScores, err := game.NewHighScoreService(f.scoresPath)
		if err != nil {
			return err
		}
		defer highScores.Close()
		options.Scores = highScores
	}

	p := tea.NewProgram(ui.NewControllerModel(options, 0, 0), tea.WithAltScreen())
	finalModel, err := p.Run()
	if controller, ok := finalModel.(ui.ControllerModel); ok {
		controller.Close()
	}
	return err
}

func main() {
	if err := run(parseFlags()); err != nil {
		log.SetOutput(os.Stderr)
		log.Error("Snake failed", "error", err)
		os.Exit(1)
	}
}
