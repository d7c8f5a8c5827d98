package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	MenuPlay IntroSubmitMsg = iota
	MenuHighScores
)

type menuItem struct {
	label  string
	choice IntroSubmitMsg
}

var mainMenu = []menuItem{
	{label: "Play", choice: MenuPlay},
	{label: "High Scores", choice: MenuHighScores},
}

type menuKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Choose key.Binding
}

var menuKeys = menuKeyMap{
	Next:   key.NewBinding(key.WithKeys("right", "down", "l", "j", "tab")),
	Prev:   key.NewBinding(key.WithKeys("left", "up", "h", "k", "shift+tab")),
	Choose: key.NewBinding(key.WithKeys("enter", " ")),
}

const snakeBanner = `
 ███████╗███╗   ██╗ █████╗ ██╗  ██╗███████╗
 ██╔════╝████╗  ██║██╔══██╗██║ ██╔╝██╔════╝
 ███████╗██╔██╗ ██║███████║█████╔╝ █████╗
 ╚════██║██║╚██╗██║██╔══██║██╔═██╗ ██╔══╝
 ███████║██║ ╚████║██║  ██║██║  ██╗███████╗
 ╚══════╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝`

var (
	bannerStyle = lipgloss.NewStyle().Foreground(snakeColor).MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Margin(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	menuCursorStyle = menuItemStyle.
			BorderForeground(snakeColor).
			Background(snakeColor).
			Foreground(lipgloss.Color("0"))

	menuHintStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// IntroModel is the title screen with the main menu.
type IntroModel struct {
	cursor int
	width  int
	height int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, menuKeys.Next):
			m.cursor = (m.cursor + 1) % len(mainMenu)
		case key.Matches(msg, menuKeys.Prev):
			m.cursor = (m.cursor + len(mainMenu) - 1) % len(mainMenu)
		case key.Matches(msg, menuKeys.Choose):
			choice := mainMenu[m.cursor].choice
			return m, func() tea.Msg { return choice }
		}
	}
	return m, nil
}

func (m IntroModel) View() string {
	items := make([]string, len(mainMenu))
	for i, item := range mainMenu {
		style := menuItemStyle
		if i == m.cursor {
			style = menuCursorStyle
		}
		items[i] = style.Render(item.label)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		bannerStyle.Render(snakeBanner),
		lipgloss.JoinHorizontal(lipgloss.Center, items...),
		menuHintStyle.Render("arrows to choose • enter to select • ctrl+c to leave"),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
