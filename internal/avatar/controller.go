// Package avatar drives the pet's three-sprite animation: an idle face,
// a blink, and an open mouth while talking. Transitions are
// time-triggered by the UI loop; the controller only tracks which
// sprite is active and which scheduled revert is still valid.
package avatar

import "time"

// Animation timing. Fixed by design, not configuration.
const (
	BlinkInterval = 5 * time.Second
	BlinkDuration = 300 * time.Millisecond
	TalkDuration  = 700 * time.Millisecond
)

// State is which sprite the avatar currently shows.
type State int

const (
	StateIdle State = iota
	StateBlinking
	StateTalking
)

func (s State) String() string {
	switch s {
	case StateBlinking:
		return "blinking"
	case StateTalking:
		return "talking"
	default:
		return "idle"
	}
}

// Controller tracks the active sprite. Each transient transition
// returns a generation token; the matching revert must present the
// same token or it is ignored. That gives last-writer-wins semantics:
// a blink during a talk replaces the sprite and the pending return to
// idle in one step, with no queue.
//
// Not safe for concurrent use; only the UI loop touches it.
type Controller struct {
	state State
	gen   uint64
}

// NewController returns a controller showing the idle sprite.
func NewController() *Controller {
	return &Controller{}
}

// State reports the active sprite.
func (c *Controller) State() State { return c.state }

// Blink switches to the blink sprite and returns the token the revert
// scheduled BlinkDuration from now must carry.
func (c *Controller) Blink() uint64 {
	c.state = StateBlinking
	c.gen++
	return c.gen
}

// Talk switches to the open-mouth sprite and returns the token the
// revert scheduled TalkDuration from now must carry.
func (c *Controller) Talk() uint64 {
	c.state = StateTalking
	c.gen++
	return c.gen
}

// Revert returns the avatar to idle if gen is still the most recent
// transition. Stale tokens are dropped, which is how an overwritten
// animation's pending revert dies.
func (c *Controller) Revert(gen uint64) bool {
	if gen != c.gen {
		return false
	}
	c.state = StateIdle
	return true
}
