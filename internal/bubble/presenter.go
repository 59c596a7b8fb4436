// Package bubble holds the speech bubble's typewriter state: a message
// revealed one rune per tick, then hidden after a fixed delay. The UI
// loop drives the ticks; the presenter only validates them.
package bubble

import "time"

// Reveal and hide timing. Fixed by design, not configuration.
const (
	RevealInterval = 30 * time.Millisecond
	HideDelay      = 6 * time.Second
)

// Presenter tracks one message's reveal progress. Show bumps a
// generation token that every subsequent tick must carry, so a new
// message cleanly cancels the previous reveal and any pending
// auto-hide without leaked timers or a double-hide.
//
// Not safe for concurrent use; only the UI loop touches it.
type Presenter struct {
	full     []rune
	revealed int
	visible  bool
	gen      uint64
}

// New returns a hidden, empty presenter.
func New() *Presenter {
	return &Presenter{}
}

// Show starts revealing message from an empty bubble and returns the
// token for this reveal's ticks. The bubble becomes visible
// immediately, before the first rune appears.
func (p *Presenter) Show(message string) uint64 {
	p.full = []rune(message)
	p.revealed = 0
	p.visible = true
	p.gen++
	return p.gen
}

// Advance reveals one more rune. ok is false when gen is stale (a
// newer Show superseded this reveal); done is true once the whole
// message is visible and the caller should schedule the auto-hide.
func (p *Presenter) Advance(gen uint64) (done, ok bool) {
	if gen != p.gen {
		return false, false
	}
	if p.revealed < len(p.full) {
		p.revealed++
	}
	return p.revealed == len(p.full), true
}

// Hide clears the bubble if gen is still current. A stale token means
// a newer message owns the bubble now and the old hide must not fire.
func (p *Presenter) Hide(gen uint64) bool {
	if gen != p.gen {
		return false
	}
	p.visible = false
	return true
}

// Text returns the revealed prefix of the current message.
func (p *Presenter) Text() string { return string(p.full[:p.revealed]) }

// Visible reports whether the bubble should render at all.
func (p *Presenter) Visible() bool { return p.visible }
