package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/snake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	backgroundColor = lipgloss.Color("#3299D5")
	snakeColor      = lipgloss.Color("#00FF00")
	foodColor       = lipgloss.Color("#FF0000")
	textColor       = lipgloss.Color("#FFFFFF")

	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	statusStyle = lipgloss.NewStyle().Faint(true)

	// Every grid cell is two terminal columns wide so cells look square.
	emptyCell = lipgloss.NewStyle().Background(backgroundColor).Render("  ")
	snakeCell = lipgloss.NewStyle().Background(backgroundColor).Foreground(snakeColor).Render("██")
	foodCell  = lipgloss.NewStyle().Background(backgroundColor).Foreground(foodColor).Render("▓▓")
)

const (
	cellColumns = 2
	// status line, top and bottom border, help line
	chromeRows    = 4
	chromeColumns = 2
)

const tooSmallMessage = "Terminal too small, please resize."

type frameMsg time.Time

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int

	gameManager *game.GameManager
	frame       game.FrameResult
	pending     []game.Key
	keys        KeyMap
	help        help.Model
}

func NewGameModel(gm *game.GameManager, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameManager:  gm,
		frame:        gm.Frame(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return frameTick(m.gameManager.Config().FrameDuration())
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		k, ok := m.keys.Translate(msg)
		if !ok {
			return m, nil
		}
		if k == game.KeyClose {
			m.frame = m.gameManager.Step([]game.Key{k})
			m.gameManager.Close()
			return m, tea.Quit
		}
		// Held until the next frame, like a polled event queue.
		m.pending = append(m.pending, k)
		return m, nil

	case frameMsg:
		m.frame = m.gameManager.Step(m.pending)
		m.pending = nil
		if m.frame.State == game.StateTerminated {
			m.gameManager.Close()
			return m, tea.Quit
		}
		return m, frameTick(m.gameManager.Config().FrameDuration())
	}

	return m, nil
}

func (m GameViewModel) View() string {
	grid := m.gameManager.Grid()
	window, ok := boardWindowFor(grid, m.frame.Head, m.ScreenWidth, m.ScreenHeight)
	if !ok {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, tooSmallMessage)
	}

	var board string
	if m.frame.State == game.StateLost {
		board = renderLostScreen(m.frame, window.Columns()*cellColumns, window.Rows())
	} else {
		board = renderBoard(m.frame, grid, window)
	}

	helpModel := m.help
	helpModel.Width = m.ScreenWidth
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatusLine(),
		mapViewStyle.Render(board),
		helpModel.View(m.keys.ForState(m.frame.State)),
	)

	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return content
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

// boardWindow is the range of cells drawn, end exclusive.
type boardWindow struct {
	startCol, endCol int
	startRow, endRow int
}

func (w boardWindow) Columns() int {
	return w.endCol - w.startCol
}

func (w boardWindow) Rows() int {
	return w.endRow - w.startRow
}

// boardWindowFor clips the field to what fits on screen, centred on focus.
// A zero screen size means unknown and shows the whole field. ok is false
// when not even one cell fits.
func boardWindowFor(grid game.Grid, focus game.Position, screenWidth, screenHeight int) (boardWindow, bool) {
	if screenWidth == 0 || screenHeight == 0 {
		return boardWindow{endCol: grid.Columns(), endRow: grid.Rows()}, true
	}

	viewportW := min(grid.Columns(), (screenWidth-chromeColumns)/cellColumns)
	viewportH := min(grid.Rows(), screenHeight-chromeRows)
	if viewportW <= 0 || viewportH <= 0 {
		return boardWindow{}, false
	}

	focusCol, focusRow := grid.Cell(focus)
	startCol := clampStart(focusCol-viewportW/2, viewportW, grid.Columns())
	startRow := clampStart(focusRow-viewportH/2, viewportH, grid.Rows())

	return boardWindow{
		startCol: startCol,
		endCol:   startCol + viewportW,
		startRow: startRow,
		endRow:   startRow + viewportH,
	}, true
}

func clampStart(desired, size, total int) int {
	return max(0, min(desired, total-size))
}

func (m GameViewModel) renderStatusLine() string {
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		scoreStyle.Render(fmt.Sprintf("Score: %d", m.frame.Score)),
		statusStyle.Render(fmt.Sprintf("   Best: %d   Player: %s   Round: %d",
			max(m.gameManager.BestScore(), m.frame.Score),
			m.gameManager.PlayerName(),
			m.gameManager.RoundsPlayed())),
	)
	if m.ScreenWidth == 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(m.ScreenWidth).Render(line)
}

// renderBoard draws the cells inside window: background, food, then the snake on top.
func renderBoard(frame game.FrameResult, grid game.Grid, window boardWindow) string {
	body := frame.Body
	if len(body) == 0 {
		body = []game.Position{frame.Head}
	}
	occupied := make(map[game.Position]struct{}, len(body))
	for _, segment := range body {
		occupied[segment] = struct{}{}
	}

	var sb strings.Builder
	for row := window.startRow; row < window.endRow; row++ {
		for col := window.startCol; col < window.endCol; col++ {
			pos := grid.PositionOf(col, row)
			if _, ok := occupied[pos]; ok {
				sb.WriteString(snakeCell)
				continue
			}
			if pos == frame.Food {
				sb.WriteString(foodCell)
				continue
			}
			sb.WriteString(emptyCell)
		}
		if row < window.endRow-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
