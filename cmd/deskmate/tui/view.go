package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Waking up..."
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Avatar.Render(m.sprites.Frame(m.ctrl.State())),
		m.styles.Input.Render(m.input.View()),
	)

	body := left
	if m.bubble.Visible() {
		bubbleWidth := max(20, min(40, m.width-lipgloss.Width(left)-6))
		bubbleView := m.styles.Bubble.Width(bubbleWidth).Render(m.bubble.Text())
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", bubbleView)
	}

	status := m.styles.StatusBar.Render("enter: send · esc: quit")
	if m.quitting {
		status = m.styles.StatusBar.Render("shutting down...")
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}
