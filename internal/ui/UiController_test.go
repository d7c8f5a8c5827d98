package ui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Mshel/snake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type fakeScoreStore struct {
	scores []game.Score
	err    error
}

func (s *fakeScoreStore) SavePlayersHighScore(score game.Score) error {
	s.scores = append(s.scores, score)
	return nil
}

func (s *fakeScoreStore) GetHighScores(limit, offset int) ([]game.Score, error) {
	return s.scores, s.err
}

func (s *fakeScoreStore) GetTotalScoreCount() (int, error) {
	return len(s.scores), s.err
}

func newTestController(options Options) ControllerModel {
	options.Config = game.DefaultConfig()
	options.Config.Seed = 9
	options.Logger = log.New(io.Discard)
	return NewControllerModel(options, 120, 40)
}

func step(t *testing.T, m tea.Model, msg tea.Msg) (ControllerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	c, ok := next.(ControllerModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return c, cmd
}

func TestControllerFlowToGame(t *testing.T) {
	m := newTestController(Options{PlayerName: "ada"})

	m, cmd := step(t, m, runes("q"))
	if isQuit(cmd) {
		t.Fatal("q must not quit from the intro screen")
	}

	m, _ = step(t, m, IntroSubmitMsg(0))
	if m.CurrentScreen != SetupScreen {
		t.Fatalf("expected the setup screen, got %d", m.CurrentScreen)
	}

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected enter to submit the name")
	}
	submit, ok := cmd().(SetupSubmitMsg)
	if !ok || submit.Name != "ada" {
		t.Fatalf("expected a submit for ada, got %#v", submit)
	}

	m, cmd = step(t, m, submit)
	if m.CurrentScreen != GameScreen || cmd == nil {
		t.Fatalf("expected the game screen with a frame scheduled, got %d", m.CurrentScreen)
	}
	if view := m.View(); !strings.Contains(view, "Player: ada") {
		t.Fatalf("expected the player name in the view:\n%s", view)
	}

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("expected ctrl+c to quit from the game screen")
	}
}

func TestControllerCtrlCOnMenus(t *testing.T) {
	m := newTestController(Options{})
	if _, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatal("expected ctrl+c to quit from the intro screen")
	}
}

func TestControllerPilotFactoryFailure(t *testing.T) {
	m := newTestController(Options{
		NewPilot: func() (game.Pilot, error) { return nil, errors.New("no script") },
	})
	m, _ = step(t, m, IntroSubmitMsg(0))
	if _, cmd := step(t, m, SetupSubmitMsg{Name: "ada"}); !isQuit(cmd) {
		t.Fatal("expected the program to quit when the game cannot start")
	}
}

func TestControllerStartsPilotedGame(t *testing.T) {
	m := newTestController(Options{
		NewPilot: func() (game.Pilot, error) { return game.NewDefaultLuaPilot() },
	})
	m, _ = step(t, m, IntroSubmitMsg(0))
	m, _ = step(t, m, SetupSubmitMsg{Name: "bot"})
	m, _ = step(t, m, frameMsg{})

	gv, ok := m.GameModel.(GameViewModel)
	if !ok {
		t.Fatalf("unexpected game model %T", m.GameModel)
	}
	if gv.frame.Direction.IsZero() {
		t.Fatal("expected the pilot to start moving")
	}
	gv.gameManager.Close()
}

func TestLeaderboardScreen(t *testing.T) {
	store := &fakeScoreStore{scores: []game.Score{
		{PlayerName: "ada", Score: 12, Ticks: 300, CreatedAt: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{PlayerName: "bob", Score: 4, Ticks: 80, CreatedAt: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
	}}
	m := newTestController(Options{Scores: store})

	m, cmd := step(t, m, IntroSubmitMsg(1))
	if m.CurrentScreen != LeaderboardScreen || cmd == nil {
		t.Fatalf("expected the leaderboard screen to load scores, got %d", m.CurrentScreen)
	}
	if view := m.View(); !strings.Contains(view, "Loading...") {
		t.Fatalf("expected a loading view:\n%s", view)
	}

	m, _ = step(t, m, cmd())
	view := m.View()
	for _, want := range []string{"ada", "bob", "12", "2026-03-04", "Rounds recorded: 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in the leaderboard:\n%s", want, view)
		}
	}

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, cmd())
	if m.CurrentScreen != IntroScreen {
		t.Fatalf("expected to return to the intro, got %d", m.CurrentScreen)
	}
}

func TestLeaderboardWithoutStore(t *testing.T) {
	m := newTestController(Options{})
	m, cmd := step(t, m, IntroSubmitMsg(1))
	if cmd != nil {
		t.Fatal("nothing to load without a store")
	}
	if view := m.View(); !strings.Contains(view, "not being recorded") {
		t.Fatalf("expected the disabled message:\n%s", view)
	}
}

func TestLeaderboardLoadError(t *testing.T) {
	store := &fakeScoreStore{err: errors.New("locked")}
	m := newTestController(Options{Scores: store})
	m, cmd := step(t, m, IntroSubmitMsg(1))
	m, _ = step(t, m, cmd())
	if view := m.View(); !strings.Contains(view, "Could not load") {
		t.Fatalf("expected the error message:\n%s", view)
	}
}

func TestControllerReportsAndClosesGames(t *testing.T) {
	var started []*game.GameManager
	m := newTestController(Options{
		NewPilot:    func() (game.Pilot, error) { return game.NewDefaultLuaPilot() },
		OnGameStart: func(gm *game.GameManager) { started = append(started, gm) },
	})
	m, _ = step(t, m, IntroSubmitMsg(0))
	m, _ = step(t, m, SetupSubmitMsg{Name: "ada"})
	if len(started) != 1 {
		t.Fatalf("expected one started game, got %d", len(started))
	}

	m.Close()
	m.Close()
	if frame := started[0].Step(nil); frame.State != game.StateRunning || !frame.Direction.IsZero() {
		t.Fatalf("expected the closed game to run on without its pilot, got %+v", frame)
	}
}
