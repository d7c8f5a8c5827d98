package ui

import (
	"strconv"
	"strings"

	"github.com/Mshel/snake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const leaderboardSize = 10

var (
	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

type scoresLoadedMsg struct {
	scores []game.Score
	total  int
	err    error
}

// LeaderboardModel lists the best finished rounds.
type LeaderboardModel struct {
	scores game.ScoreStore
	loaded scoresLoadedMsg
	ready  bool
	width  int
	height int
}

func NewLeaderboardModel(scores game.ScoreStore, w, h int) LeaderboardModel {
	return LeaderboardModel{scores: scores, width: w, height: h}
}

func (m LeaderboardModel) Init() tea.Cmd {
	if m.scores == nil {
		return nil
	}
	store := m.scores
	return func() tea.Msg {
		scores, err := store.GetHighScores(leaderboardSize, 0)
		if err != nil {
			return scoresLoadedMsg{err: err}
		}
		total, err := store.GetTotalScoreCount()
		return scoresLoadedMsg{scores: scores, total: total, err: err}
	}
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case scoresLoadedMsg:
		if msg.err != nil {
			log.Error("Failed to load high scores", "error", msg.err)
		}
		m.loaded = msg
		m.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return QuitGameMsg{} }
		}
	}
	return m, nil
}

func (m LeaderboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("HIGH SCORES")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to return.")

	var body string
	switch {
	case m.scores == nil:
		body = "High scores are not being recorded."
	case !m.ready:
		body = "Loading..."
	case m.loaded.err != nil:
		body = "Could not load high scores."
	case len(m.loaded.scores) == 0:
		body = "No rounds played yet."
	default:
		body = m.renderTable()
	}

	finalContent := lipgloss.JoinVertical(lipgloss.Center, title, body, instruction)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 2).Render(finalContent),
	)
}

func (m LeaderboardModel) renderTable() string {
	var tableContent strings.Builder

	nameWidth := 20
	numberWidth := 8

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(4).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(numberWidth).Render("Score"),
		leaderboardHeaderStyle.Width(numberWidth).Render("Ticks"),
		leaderboardHeaderStyle.Width(12).Render("Date"),
	)
	tableContent.WriteString(header + "\n")

	for i, score := range m.loaded.scores {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(4).Render(strconv.Itoa(i+1)),
			leaderboardRowStyle.Width(nameWidth).Render(score.PlayerName),
			leaderboardRowStyle.Width(numberWidth).Render(strconv.Itoa(score.Score)),
			leaderboardRowStyle.Width(numberWidth).Render(strconv.Itoa(score.Ticks)),
			leaderboardRowStyle.Width(12).Render(score.CreatedAt.Format("2006-01-02")),
		)
		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	tableContent.WriteString(statusStyle.Render("Rounds recorded: " + strconv.Itoa(m.loaded.total)))
	return tableContent.String()
}
