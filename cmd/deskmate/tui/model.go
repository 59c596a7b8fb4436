// Package tui is the deskmate shell: a bubbletea program hosting the
// avatar pane, the speech bubble, and a single-line input. All timers
// run through the update loop; component state is only ever touched
// here, so there is nothing to lock.
package tui

import (
	"strings"

	"deskmate/cmd/deskmate/ui"
	"deskmate/internal/avatar"
	"deskmate/internal/bubble"
	"deskmate/internal/respond"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Params wires the shell to its collaborators.
type Params struct {
	Sprites   *avatar.SpriteSet
	Watcher   *avatar.Watcher
	Responder *respond.Responder
	Styles    ui.Styles
	Logger    *zap.Logger
}

// Model is the bubbletea model for the pet.
type Model struct {
	input   textinput.Model
	ctrl    *avatar.Controller
	sprites *avatar.SpriteSet
	watcher *avatar.Watcher
	bubble  *bubble.Presenter
	resp    *respond.Responder
	state   respond.State
	styles  ui.Styles
	log     *zap.Logger

	width    int
	height   int
	ready    bool
	quitting bool
}

// New builds the shell model. The conversation state starts empty and
// lives for the process lifetime; nothing is persisted.
func New(p Params) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask me something..."
	ti.CharLimit = 200
	ti.Focus()

	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return Model{
		input:   ti,
		ctrl:    avatar.NewController(),
		sprites: p.Sprites,
		watcher: p.Watcher,
		bubble:  bubble.New(),
		resp:    p.Responder,
		styles:  p.Styles,
		log:     log,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		blinkTickCmd(),
		summaryTickCmd(),
		watchCmd(m.watcher),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(20, min(40, msg.Width-4))
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.quitting {
				return m, nil
			}
			return m.submit()
		}

	case blinkTickMsg:
		// Blink fires on schedule even mid-talk; the most recent
		// transition owns the sprite and the revert deadline.
		gen := m.ctrl.Blink()
		return m, tea.Batch(
			revertCmd(gen, avatar.BlinkDuration),
			blinkTickCmd(),
		)

	case spriteRevertMsg:
		m.ctrl.Revert(msg.gen)
		return m, nil

	case revealTickMsg:
		done, ok := m.bubble.Advance(msg.gen)
		if !ok {
			return m, nil
		}
		if done {
			return m, hideCmd(msg.gen)
		}
		return m, revealCmd(msg.gen)

	case bubbleHideMsg:
		m.bubble.Hide(msg.gen)
		return m, nil

	case summaryTickMsg:
		m.log.Info("hourly summary fired")
		return m, tea.Batch(m.speak(m.resp.Summary()), summaryTickCmd())

	case spriteChangedMsg:
		if err := m.sprites.Reload(); err != nil {
			m.log.Warn("sprite reload failed", zap.Error(err))
		}
		return m, watchCmd(m.watcher)

	case quitNowMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one input round: normalize, dispatch, talk, show.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.ToLower(strings.TrimSpace(m.input.Value()))
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	reply := m.resp.Respond(&m.state, text)
	cmds := []tea.Cmd{m.speak(reply.Text)}
	if reply.Quit {
		m.quitting = true
		m.input.Blur()
		cmds = append(cmds, quitLaterCmd())
	}
	return m, tea.Batch(cmds...)
}

// speak starts the talk animation and the bubble typewriter for text.
func (m *Model) speak(text string) tea.Cmd {
	talkGen := m.ctrl.Talk()
	showGen := m.bubble.Show(text)
	return tea.Batch(
		revertCmd(talkGen, avatar.TalkDuration),
		revealCmd(showGen),
	)
}
