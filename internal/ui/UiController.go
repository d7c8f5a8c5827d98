package ui

import (
	"github.com/Mshel/snake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	LeaderboardScreen
)

// Messages for state transitions
type IntroSubmitMsg int
type SetupSubmitMsg struct {
	Name string
}

// QuitGameMsg sends the controller back to the intro screen.
type QuitGameMsg struct{}

// Options are shared by every game started from one controller.
type Options struct {
	Config game.Config
	// Scores may be nil, in which case nothing is recorded.
	Scores game.ScoreStore
	// NewPilot may be nil. It is called once per game so each game owns its pilot.
	NewPilot   func() (game.Pilot, error)
	PlayerName string
	Logger     *log.Logger
	// OnGameStart, if set, sees every game manager this controller creates.
	OnGameStart func(*game.GameManager)
}

type ControllerModel struct {
	CurrentScreen Screen
	options       Options

	IntroModel       tea.Model
	SetupModel       tea.Model
	GameModel        tea.Model
	LeaderboardModel tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(options Options, screenWidth int, screenHeight int) ControllerModel {
	if options.Logger == nil {
		options.Logger = log.Default()
	}

	return ControllerModel{
		CurrentScreen: IntroScreen,
		options:       options,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(options.PlayerName, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	case LeaderboardScreen:
		if m.LeaderboardModel != nil {
			return m.LeaderboardModel.View()
		}
		return "Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// The game screen turns ctrl+c into a close event itself.
	if msg, ok := msg.(tea.KeyMsg); ok && m.CurrentScreen != GameScreen {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		if m.LeaderboardModel != nil {
			m.LeaderboardModel, _ = m.LeaderboardModel.Update(msg)
		}
		return m, nil

	case IntroSubmitMsg:
		if msg == MenuPlay {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		m.CurrentScreen = LeaderboardScreen
		m.LeaderboardModel = NewLeaderboardModel(m.options.Scores, m.ScreenWidth, m.ScreenHeight)
		return m, m.LeaderboardModel.Init()

	case SetupSubmitMsg:
		gameManager, err := m.newGameManager(msg.Name)
		if err != nil {
			m.options.Logger.Error("Could not start game", "error", err)
			return m, tea.Quit
		}
		if m.options.OnGameStart != nil {
			m.options.OnGameStart(gameManager)
		}
		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(gameManager, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case QuitGameMsg:
		m.CurrentScreen = IntroScreen
		m.LeaderboardModel = nil
		return m, m.IntroModel.Init()
	}

	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	case LeaderboardScreen:
		if m.LeaderboardModel != nil {
			m.LeaderboardModel, cmd = m.LeaderboardModel.Update(msg)
		}
	}

	return m, cmd
}

func (m ControllerModel) newGameManager(name string) (*game.GameManager, error) {
	opts := []game.Option{
		game.WithPlayerName(name),
		game.WithLogger(m.options.Logger),
	}
	if m.options.Scores != nil {
		opts = append(opts, game.WithScoreStore(m.options.Scores))
	}
	var pilot game.Pilot
	if m.options.NewPilot != nil {
		var err error
		pilot, err = m.options.NewPilot()
		if err != nil {
			return nil, err
		}
		opts = append(opts, game.WithPilot(pilot))
	}

	gameManager, err := game.GetNewGameManager(m.options.Config, opts...)
	if err != nil {
		if closer, ok := pilot.(interface{ Close() }); ok {
			closer.Close()
		}
		return nil, err
	}
	return gameManager, nil
}

// Close releases the current game, if any.
func (m ControllerModel) Close() {
	if gv, ok := m.GameModel.(GameViewModel); ok {
		gv.gameManager.Close()
	}
}
