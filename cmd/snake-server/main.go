package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mshel/snake/internal/game"
	"github.com/Mshel/snake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

const (
	defaultAddress     = "0.0.0.0:6996"
	defaultHostKeyPath = ".ssh/snake_ed25519"
	defaultScoresPath  = "highscores.db"

	maxConnectionsPerIP = 2
	shutdownTimeout     = 30 * time.Second
)

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func run() error {
	log.SetLevel(log.DebugLevel)

	address := getEnv("SNAKE_ADDRESS", defaultAddress)
	hostKeyPath := getEnv("SNAKE_PRIVATE_KEY_PATH", defaultHostKeyPath)
	scoresPath := getEnv("SNAKE_SCORES_DB", defaultScoresPath)

	highScores, err := game.NewHighScoreService(scoresPath)
	if err != nil {
		return err
	}
	defer highScores.Close()

	limiter := newConnectionLimiter(maxConnectionsPerIP)

	sshServer, err := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler(highScores)),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.Middleware,
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create ssh server: %w", err)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	serveErr := make(chan error, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGTERM)
	log.Info("Starting SSH server", "address", address)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-serverDoneChannel:
	case err := <-serveErr:
		return fmt.Errorf("could not start server: %w", err)
	}

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("could not stop server: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error("Snake server failed", "error", err)
		os.Exit(1)
	}
}

// viewHandler gives every session its own controller. Only the score store is
// shared. Games are released when the session context ends.
func viewHandler(scores game.ScoreStore) bubbletea.Handler {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sshSession.Pty()
		logger := log.Default().With("session", sshSession.Context().SessionID(), "user", sshSession.User())

		games := &sessionGames{}
		go func() {
			<-sshSession.Context().Done()
			games.closeAll()
			logger.Debug("Session games released")
		}()

		controllerModel := ui.NewControllerModel(ui.Options{
			Config:      game.DefaultConfig(),
			Scores:      scores,
			PlayerName:  sshSession.User(),
			Logger:      logger,
			OnGameStart: games.add,
		}, pty.Window.Width, pty.Window.Height)

		return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
