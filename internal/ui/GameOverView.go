package ui

import (
	"fmt"

	"github.com/Mshel/snake/internal/game"
	"github.com/charmbracelet/lipgloss"
)

const lostMessage = "You Lost! Press 'C' to Play Again or 'Q' to Quit"

var (
	lostMessageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(foodColor).
				Background(backgroundColor)

	lostDetailStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(backgroundColor)

	lossReasons = map[game.LossReason]string{
		game.LossWall: "You hit the wall.",
		game.LossSelf: "You ran into yourself.",
	}
)

// renderLostScreen replaces the board with the centered loss message.
func renderLostScreen(frame game.FrameResult, width int, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lostMessageStyle.Render(lostMessage),
		"",
		lostDetailStyle.Render(lossReasons[frame.Reason]),
		lostDetailStyle.Render(fmt.Sprintf("Score: %d", frame.Score)),
	)

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(backgroundColor),
	)
}
