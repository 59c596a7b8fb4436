// Package respond maps free-text user input to a reply string plus
// optional side effects. Dispatch is an ordered list of (match, handle)
// pairs evaluated first-match-wins; the order is load-bearing because
// the predicates are substring tests with overlapping vocabularies.
package respond

import (
	"math/rand"
	"time"

	"deskmate/internal/sysinfo"
	"deskmate/internal/sysops"

	"go.uber.org/zap"
)

// TimeFormat renders timestamps the way the assistant speaks them.
const TimeFormat = "It's 15:04 on Monday, January 02, 2006."

// clipboardPreviewLimit caps how much clipboard text is echoed back.
const clipboardPreviewLimit = 300

// SystemInfo supplies host state snapshots. Usage blocks for the CPU
// sample window.
type SystemInfo interface {
	Battery() (sysinfo.Battery, error)
	Usage() (sysinfo.Usage, error)
	Wifi() (sysinfo.Wifi, error)
}

// Launcher starts applications and the disk-cleanup utility.
type Launcher interface {
	Open(name string) error
	Cleanup() error
}

// Clipboard reads the host clipboard.
type Clipboard interface {
	Read() (string, error)
}

// Audio toggles system mute.
type Audio interface {
	SetMute(mute bool) error
}

// RecentLister returns the n most recently modified files under the
// user's documents directory.
type RecentLister interface {
	Recent(n int) ([]sysops.Entry, error)
}

// Deps are the collaborators a Responder calls out to. Every OS-facing
// call goes through one of these so the rule table can be exercised
// hermetically in tests.
type Deps struct {
	Info      SystemInfo
	Launcher  Launcher
	Clipboard Clipboard
	Audio     Audio
	Recent    RecentLister

	// Now and Rand default to the wall clock and a time-seeded source.
	Now  func() time.Time
	Rand *rand.Rand

	Logger *zap.Logger
}

// Profile is the small set of remembered facts about the user.
type Profile struct {
	Name          string
	FavoriteColor string
	Birthday      string
}

// State is the conversational state the shell owns and passes into
// every Respond call. The two game flags are deliberately independent:
// starting one game does not cancel the other.
type State struct {
	GuessActive bool
	Secret      int
	RPSActive   bool
	Profile     Profile
}

// Reply is the outcome of one dispatch round.
type Reply struct {
	Text string
	// Quit asks the shell to shut down after showing Text.
	Quit bool
}

// Responder evaluates the rule table. It is not safe for concurrent
// use; the single UI loop is the only caller.
type Responder struct {
	deps Deps
	log  *zap.Logger
}

// New builds a Responder. Nil Now/Rand/Logger fields get defaults.
func New(deps Deps) *Responder {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Responder{deps: deps, log: log}
}

// Respond runs text through the rule table and returns the first
// matching rule's reply. The caller must trim and lower-case text
// first. Empty input falls through to the final fallback like any
// other unmatched string.
func (r *Responder) Respond(st *State, text string) Reply {
	for _, rl := range rules {
		if rl.match(r, st, text) {
			reply := rl.handle(r, st, text)
			r.log.Debug("dispatched input",
				zap.String("rule", rl.name),
				zap.Int("input_len", len(text)))
			return reply
		}
	}
	// Unreachable: the last rule matches everything.
	return Reply{Text: fallbackText}
}
