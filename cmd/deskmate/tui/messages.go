package tui

import (
	"time"

	"deskmate/internal/avatar"
	"deskmate/internal/bubble"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer intervals owned by the shell rather than a component.
const (
	summaryInterval = time.Hour
	quitDelay       = 2 * time.Second
)

// blinkTickMsg fires the recurring blink, independent of talk state.
type blinkTickMsg struct{}

// spriteRevertMsg returns the avatar to idle if gen is still current.
type spriteRevertMsg struct{ gen uint64 }

// revealTickMsg advances the bubble typewriter for generation gen.
type revealTickMsg struct{ gen uint64 }

// bubbleHideMsg hides the bubble if generation gen is still current.
type bubbleHideMsg struct{ gen uint64 }

// summaryTickMsg fires the hourly status summary.
type summaryTickMsg struct{}

// quitNowMsg ends the program after the goodbye message had its two
// seconds on screen.
type quitNowMsg struct{}

// spriteChangedMsg reports that a sprite file was edited on disk.
type spriteChangedMsg struct{}

func blinkTickCmd() tea.Cmd {
	return tea.Tick(avatar.BlinkInterval, func(time.Time) tea.Msg {
		return blinkTickMsg{}
	})
}

func revertCmd(gen uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return spriteRevertMsg{gen: gen}
	})
}

func revealCmd(gen uint64) tea.Cmd {
	return tea.Tick(bubble.RevealInterval, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

func hideCmd(gen uint64) tea.Cmd {
	return tea.Tick(bubble.HideDelay, func(time.Time) tea.Msg {
		return bubbleHideMsg{gen: gen}
	})
}

func summaryTickCmd() tea.Cmd {
	return tea.Tick(summaryInterval, func(time.Time) tea.Msg {
		return summaryTickMsg{}
	})
}

func quitLaterCmd() tea.Cmd {
	return tea.Tick(quitDelay, func(time.Time) tea.Msg {
		return quitNowMsg{}
	})
}

// watchCmd waits for the next sprite edit. Re-issued after every
// delivery so the watcher keeps feeding the update loop.
func watchCmd(w *avatar.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changed(); !ok {
			return nil
		}
		return spriteChangedMsg{}
	}
}
