package respond

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"deskmate/internal/sysinfo"
	"deskmate/internal/sysops"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const fallbackText = "Sorry, I don't understand. Try asking something else."

var funFacts = []string{
	"Honey never spoils.",
	"Octopuses have three hearts.",
	"Bananas are berries, but strawberries aren't.",
}

// fixTips is scanned in order; the first key contained in the input
// wins, so "slow" outranks "internet" for "my internet is slow".
var fixTips = []struct {
	key string
	tip string
}{
	{"slow", "Try restarting your PC and closing unused apps."},
	{"internet", "Check your router or try resetting your network adapter."},
	{"battery", "Try calibrating your battery or replace if it's old."},
	{"crash", "Update your drivers and check for overheating."},
	{"disk", "You can free up space by running Disk Cleanup or deleting temp files."},
}

var rpsMoves = []string{"rock", "paper", "scissors"}

type rule struct {
	name   string
	match  func(r *Responder, st *State, text string) bool
	handle func(r *Responder, st *State, text string) Reply
}

// rules is evaluated top to bottom, first match wins. Reordering
// changes behavior: "battery problem" must hit the battery rule before
// the fix-tips rule sees "problem", and the exact-match rules near the
// bottom only fire because nothing above claimed their words.
var rules = []rule{
	{"time", matchAny("time", "date"), (*Responder).timeReply},
	{"battery", matchAny("battery"), (*Responder).batteryReply},
	{"health", matchAny("health", "cpu", "memory"), (*Responder).usageReply},
	{"fix_tips", matchAny("fix", "slow", "problem", "crash", "disk"), (*Responder).fixTipReply},
	{"cleanup", matchAny("run cleanup", "open cleanup", "clean"), (*Responder).cleanupReply},
	{"fun_fact", matchAny("fun fact", "fact"), (*Responder).factReply},
	{"summary", matchAny("summary", "status report", "how am i doing"), (*Responder).summaryReply},
	{"open_app", matchPrefix("open "), (*Responder).openAppReply},
	{"clipboard", matchAny("clipboard", "read clipboard"), (*Responder).clipboardReply},
	{"goodbye", matchExact("exit", "quit", "close", "bye"), (*Responder).goodbyeReply},
	{"guess_start", matchAny("play guess", "guess number"), (*Responder).guessStartReply},
	{"guess_move", matchGuessMove, (*Responder).guessMoveReply},
	{"rps_start", matchAny("rock paper scissors", "play rps"), (*Responder).rpsStartReply},
	{"rps_move", matchRPSMove, (*Responder).rpsMoveReply},
	{"set_name", matchPrefix("my name is "), (*Responder).setNameReply},
	{"set_color", matchPrefix("my favorite color is "), (*Responder).setColorReply},
	{"set_birthday", matchAny("my birthday is"), (*Responder).setBirthdayReply},
	{"recall_profile", matchAny("what do you know about me"), (*Responder).profileReply},
	{"recent_files", matchAny("recent files", "show recent"), (*Responder).recentFilesReply},
	{"wifi", matchAny("wifi info", "wifi status", "network info"), (*Responder).wifiReply},
	{"greeting", matchExact("hi", "hello"), (*Responder).greetingReply},
	{"mute", matchExact("mute audio", "mute sound"), (*Responder).muteReply},
	{"unmute", matchExact("unmute audio", "unmute sound"), (*Responder).unmuteReply},
	{"fallback", matchAll, (*Responder).fallbackReply},
}

func matchAny(subs ...string) func(*Responder, *State, string) bool {
	return func(_ *Responder, _ *State, text string) bool {
		for _, s := range subs {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

func matchPrefix(prefix string) func(*Responder, *State, string) bool {
	return func(_ *Responder, _ *State, text string) bool {
		return strings.HasPrefix(text, prefix)
	}
}

func matchExact(options ...string) func(*Responder, *State, string) bool {
	return func(_ *Responder, _ *State, text string) bool {
		for _, o := range options {
			if text == o {
				return true
			}
		}
		return false
	}
}

func matchAll(_ *Responder, _ *State, _ string) bool { return true }

func matchGuessMove(_ *Responder, st *State, text string) bool {
	return st.GuessActive && strings.HasPrefix(text, "guess")
}

func matchRPSMove(_ *Responder, st *State, text string) bool {
	if !st.RPSActive {
		return false
	}
	for _, m := range rpsMoves {
		if text == m {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Handlers, in table order.
// -----------------------------------------------------------------------------

func (r *Responder) timeReply(*State, string) Reply {
	return Reply{Text: r.deps.Now().Format(TimeFormat)}
}

func (r *Responder) batteryReply(*State, string) Reply {
	b, err := r.deps.Info.Battery()
	if err != nil {
		r.log.Warn("battery query failed", zap.Error(err))
		return Reply{Text: "Battery info not available."}
	}
	plugged := "on battery"
	if b.Charging {
		plugged = "charging"
	}
	return Reply{Text: fmt.Sprintf("Battery is at %s%% and %s.", num(b.Percent), plugged)}
}

func (r *Responder) usageReply(*State, string) Reply {
	u, err := r.deps.Info.Usage()
	if err != nil {
		r.log.Warn("usage query failed", zap.Error(err))
		return Reply{Text: "Sorry, I couldn't read system usage."}
	}
	return Reply{Text: fmt.Sprintf("CPU usage is %s%%. Memory usage is %s%%.",
		num(u.CPUPercent), num(u.MemPercent))}
}

func (r *Responder) fixTipReply(_ *State, text string) Reply {
	for _, ft := range fixTips {
		if strings.Contains(text, ft.key) {
			return Reply{Text: ft.tip}
		}
	}
	return Reply{Text: "Try restarting your computer or checking for updates."}
}

func (r *Responder) cleanupReply(*State, string) Reply {
	if err := r.deps.Launcher.Cleanup(); err != nil {
		return Reply{Text: "Failed to launch Disk Cleanup."}
	}
	return Reply{Text: "Launching Disk Cleanup..."}
}

func (r *Responder) factReply(*State, string) Reply {
	return Reply{Text: funFacts[r.deps.Rand.Intn(len(funFacts))]}
}

func (r *Responder) summaryReply(*State, string) Reply {
	return Reply{Text: r.Summary()}
}

// Summary composes the status report used by the summary rule, the
// hourly trigger, and the summary subcommand. Battery is queried
// concurrently while the CPU sample window runs, so the whole call
// costs one sample window.
func (r *Responder) Summary() string {
	var (
		batt sysinfo.Battery
		berr error
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		batt, berr = r.deps.Info.Battery()
		return nil
	})
	usage, uerr := r.deps.Info.Usage()
	_ = g.Wait()

	battLine := "Battery info not available."
	if berr == nil {
		plugged := "on battery"
		if batt.Charging {
			plugged = "charging"
		}
		battLine = fmt.Sprintf("Battery at %s%%, %s.", num(batt.Percent), plugged)
	}
	usageLine := "Usage info not available."
	if uerr == nil {
		usageLine = fmt.Sprintf("CPU: %s%%, Memory: %s%%.",
			num(usage.CPUPercent), num(usage.MemPercent))
	}
	fact := "Fun fact: " + funFacts[r.deps.Rand.Intn(len(funFacts))]

	return strings.Join([]string{
		r.deps.Now().Format(TimeFormat),
		battLine,
		usageLine,
		fact,
	}, "\n")
}

func (r *Responder) openAppReply(_ *State, text string) Reply {
	name := strings.TrimSpace(strings.TrimPrefix(text, "open "))
	err := r.deps.Launcher.Open(name)
	switch {
	case errors.Is(err, sysops.ErrUnknownApp):
		return Reply{Text: fmt.Sprintf("I don't know how to open %s.", name)}
	case err != nil:
		return Reply{Text: fmt.Sprintf("Couldn't launch %s.", name)}
	}
	return Reply{Text: fmt.Sprintf("Launching %s...", capitalize(name))}
}

func (r *Responder) clipboardReply(*State, string) Reply {
	text, err := r.deps.Clipboard.Read()
	if err != nil {
		r.log.Warn("clipboard read failed", zap.Error(err))
		return Reply{Text: "Sorry, I couldn't read the clipboard."}
	}
	if text == "" {
		return Reply{Text: "Clipboard is empty or not text."}
	}
	runes := []rune(text)
	if len(runes) > clipboardPreviewLimit {
		runes = runes[:clipboardPreviewLimit]
	}
	return Reply{Text: "Clipboard says:\n" + string(runes)}
}

func (r *Responder) goodbyeReply(*State, string) Reply {
	return Reply{Text: "Goodbye! Shutting down...", Quit: true}
}

func (r *Responder) guessStartReply(st *State, _ string) Reply {
	st.GuessActive = true
	st.Secret = r.deps.Rand.Intn(10) + 1
	return Reply{Text: "I'm thinking of a number between 1 and 10. Try to guess it!"}
}

func (r *Responder) guessMoveReply(st *State, text string) Reply {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return Reply{Text: "Please type like: guess 5"}
	}
	guess, err := strconv.Atoi(fields[1])
	if err != nil {
		return Reply{Text: "Please type like: guess 5"}
	}
	switch {
	case guess < st.Secret:
		return Reply{Text: "Too low! Try again."}
	case guess > st.Secret:
		return Reply{Text: "Too high! Try again."}
	}
	st.GuessActive = false
	return Reply{Text: "Correct! You guessed it!"}
}

func (r *Responder) rpsStartReply(st *State, _ string) Reply {
	st.RPSActive = true
	return Reply{Text: "Let's play Rock, Paper, Scissors! Type your move: rock, paper, or scissors."}
}

func (r *Responder) rpsMoveReply(st *State, text string) Reply {
	user := text
	bot := rpsMoves[r.deps.Rand.Intn(len(rpsMoves))]

	var result string
	switch {
	case user == bot:
		result = "It's a tie!"
	case user == "rock" && bot == "scissors",
		user == "paper" && bot == "rock",
		user == "scissors" && bot == "paper":
		result = "You win!"
	default:
		result = "I win!"
	}

	st.RPSActive = false
	return Reply{Text: fmt.Sprintf("You chose %s, I chose %s. %s", user, bot, result)}
}

func (r *Responder) setNameReply(st *State, text string) Reply {
	name := capitalize(strings.TrimSpace(strings.TrimPrefix(text, "my name is ")))
	st.Profile.Name = name
	return Reply{Text: fmt.Sprintf("Nice to meet you, %s!", name)}
}

func (r *Responder) setColorReply(st *State, text string) Reply {
	color := strings.TrimSpace(strings.TrimPrefix(text, "my favorite color is "))
	st.Profile.FavoriteColor = color
	return Reply{Text: fmt.Sprintf("I'll remember that your favorite color is %s.", color)}
}

func (r *Responder) setBirthdayReply(st *State, text string) Reply {
	idx := strings.LastIndex(text, "my birthday is")
	date := strings.TrimSpace(text[idx+len("my birthday is"):])
	st.Profile.Birthday = date
	return Reply{Text: fmt.Sprintf("Got it! Your birthday is on %s.", date)}
}

func (r *Responder) profileReply(st *State, _ string) Reply {
	return Reply{Text: fmt.Sprintf(
		"Your name is %s, your favorite color is %s, and your birthday is %s.",
		orUnknown(st.Profile.Name),
		orUnknown(st.Profile.FavoriteColor),
		orUnknown(st.Profile.Birthday))}
}

func (r *Responder) recentFilesReply(*State, string) Reply {
	entries, err := r.deps.Recent.Recent(3)
	switch {
	case errors.Is(err, sysops.ErrMissingDir):
		return Reply{Text: "I couldn't find the Documents folder."}
	case err != nil:
		r.log.Warn("recent files scan failed", zap.Error(err))
		return Reply{Text: "Sorry, I couldn't scan your documents."}
	case len(entries) == 0:
		return Reply{Text: "No recent files found."}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s (%s)", e.Name, e.ModTime.Format("2006-01-02 15:04")))
	}
	return Reply{Text: "Here are your 3 most recent files in Documents:\n" + strings.Join(lines, "\n")}
}

func (r *Responder) wifiReply(*State, string) Reply {
	w, err := r.deps.Info.Wifi()
	if errors.Is(err, sysinfo.ErrIncompleteWifi) {
		r.log.Warn("wifi fields incomplete", zap.Error(err))
		return Reply{Text: "Could not retrieve complete Wi-Fi information."}
	}
	if err != nil {
		r.log.Warn("wifi query failed", zap.Error(err))
		return Reply{Text: "Sorry, I couldn't get the Wi-Fi information."}
	}
	return Reply{Text: fmt.Sprintf("Wi-Fi '%s' is %s with signal strength %s.",
		w.SSID, w.State, w.Signal)}
}

func (r *Responder) greetingReply(*State, string) Reply {
	return Reply{Text: "Hello."}
}

func (r *Responder) muteReply(*State, string) Reply {
	if err := r.deps.Audio.SetMute(true); err != nil {
		r.log.Warn("mute failed", zap.Error(err))
		return Reply{Text: "Sorry, I couldn't mute the audio."}
	}
	return Reply{Text: "Audio muted."}
}

func (r *Responder) unmuteReply(*State, string) Reply {
	if err := r.deps.Audio.SetMute(false); err != nil {
		r.log.Warn("unmute failed", zap.Error(err))
		return Reply{Text: "Sorry, I couldn't unmute the audio."}
	}
	return Reply{Text: "Audio unmuted."}
}

func (r *Responder) fallbackReply(*State, string) Reply {
	return Reply{Text: fallbackText}
}

// num formats a percentage rounded to one decimal place, with no
// trailing zero: 95 -> "95", 43.54 -> "43.5".
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
