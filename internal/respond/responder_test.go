// Package respond tests exercise the rule table hermetically: every
// OS-facing collaborator is a fake, the clock is pinned, and the
// random source is seeded.
package respond

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"deskmate/internal/sysinfo"
	"deskmate/internal/sysops"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInfo struct {
	batt     sysinfo.Battery
	battErr  error
	usage    sysinfo.Usage
	usageErr error
	wifi     sysinfo.Wifi
	wifiErr  error
}

func (f *fakeInfo) Battery() (sysinfo.Battery, error) { return f.batt, f.battErr }
func (f *fakeInfo) Usage() (sysinfo.Usage, error)     { return f.usage, f.usageErr }
func (f *fakeInfo) Wifi() (sysinfo.Wifi, error)       { return f.wifi, f.wifiErr }

type fakeLauncher struct {
	opened     []string
	openErr    error
	cleanups   int
	cleanupErr error
}

func (f *fakeLauncher) Open(name string) error {
	f.opened = append(f.opened, name)
	return f.openErr
}

func (f *fakeLauncher) Cleanup() error {
	f.cleanups++
	return f.cleanupErr
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Read() (string, error) { return f.text, f.err }

type fakeAudio struct {
	calls []bool
	err   error
}

func (f *fakeAudio) SetMute(mute bool) error {
	f.calls = append(f.calls, mute)
	return f.err
}

type fakeRecent struct {
	entries []sysops.Entry
	err     error
}

func (f *fakeRecent) Recent(n int) ([]sysops.Entry, error) { return f.entries, f.err }

// fixedNow is a Friday so the timestamp wording is stable.
var fixedNow = time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC)

type testDeps struct {
	info      *fakeInfo
	launcher  *fakeLauncher
	clipboard *fakeClipboard
	audio     *fakeAudio
	recent    *fakeRecent
}

func newTestResponder(t *testing.T) (*Responder, *testDeps) {
	t.Helper()
	d := &testDeps{
		info: &fakeInfo{
			batt:  sysinfo.Battery{Percent: 80, Charging: true},
			usage: sysinfo.Usage{CPUPercent: 12.3, MemPercent: 40.5},
			wifi:  sysinfo.Wifi{SSID: "HomeNet", Signal: "87%", State: "connected"},
		},
		launcher:  &fakeLauncher{},
		clipboard: &fakeClipboard{text: "copied text"},
		audio:     &fakeAudio{},
		recent:    &fakeRecent{},
	}
	r := New(Deps{
		Info:      d.info,
		Launcher:  d.launcher,
		Clipboard: d.clipboard,
		Audio:     d.audio,
		Recent:    d.recent,
		Now:       func() time.Time { return fixedNow },
		Rand:      rand.New(rand.NewSource(1)),
	})
	return r, d
}

func TestRespond_Time(t *testing.T) {
	r, _ := newTestResponder(t)
	reply := r.Respond(&State{}, "what time is it")
	assert.Equal(t, "It's 15:09 on Friday, March 14, 2025.", reply.Text)
}

func TestRespond_Battery(t *testing.T) {
	t.Run("charging", func(t *testing.T) {
		r, _ := newTestResponder(t)
		reply := r.Respond(&State{}, "how is my battery")
		assert.Equal(t, "Battery is at 80% and charging.", reply.Text)
	})

	t.Run("on battery", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.info.batt = sysinfo.Battery{Percent: 43.54, Charging: false}
		reply := r.Respond(&State{}, "battery")
		assert.Equal(t, "Battery is at 43.5% and on battery.", reply.Text)
	})

	t.Run("unavailable", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.info.battErr = errors.New("no battery present")
		reply := r.Respond(&State{}, "battery")
		assert.Equal(t, "Battery info not available.", reply.Text)
	})
}

// The rule order is part of the contract: inputs crafted to match
// several rules must resolve to the earliest one.
func TestRespond_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			// "battery" (rule 2) outranks "problem" (fix tips).
			name:  "battery beats fix tips",
			input: "battery problem",
			want:  "Battery is at 80% and charging.",
		},
		{
			// "date" (rule 1) outranks "summary" wording.
			name:  "time beats summary",
			input: "date and summary",
			want:  "It's 15:09 on Friday, March 14, 2025.",
		},
		{
			// "cpu" (rule 3) outranks "slow" (fix tips).
			name:  "health beats fix tips",
			input: "cpu is slow",
			want:  "CPU usage is 12.3%. Memory usage is 40.5%.",
		},
		{
			// "disk" hits fix tips before the cleanup rule sees "clean".
			name:  "fix tips beat cleanup",
			input: "clean my disk",
			want:  "You can free up space by running Disk Cleanup or deleting temp files.",
		},
		{
			// First contained tip key wins, scanning in table order.
			name:  "first tip key wins",
			input: "crash and slow",
			want:  "Try restarting your PC and closing unused apps.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestResponder(t)
			reply := r.Respond(&State{}, tt.input)
			assert.Equal(t, tt.want, reply.Text)
		})
	}
}

func TestRespond_FixTips(t *testing.T) {
	r, _ := newTestResponder(t)

	reply := r.Respond(&State{}, "my internet is slow")
	// "slow" is scanned before "internet" in the tip table.
	assert.Equal(t, "Try restarting your PC and closing unused apps.", reply.Text)

	reply = r.Respond(&State{}, "please fix this")
	assert.Equal(t, "Try restarting your computer or checking for updates.", reply.Text)
}

func TestRespond_Cleanup(t *testing.T) {
	t.Run("launches", func(t *testing.T) {
		r, d := newTestResponder(t)
		reply := r.Respond(&State{}, "run cleanup")
		assert.Equal(t, "Launching Disk Cleanup...", reply.Text)
		assert.Equal(t, 1, d.launcher.cleanups)
	})

	t.Run("failure", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.launcher.cleanupErr = errors.New("exec: not found")
		reply := r.Respond(&State{}, "run cleanup")
		assert.Equal(t, "Failed to launch Disk Cleanup.", reply.Text)
	})
}

func TestRespond_FunFact(t *testing.T) {
	r, _ := newTestResponder(t)
	reply := r.Respond(&State{}, "tell me a fun fact")
	assert.Contains(t, funFacts, reply.Text)
}

func TestRespond_Summary(t *testing.T) {
	r, _ := newTestResponder(t)
	reply := r.Respond(&State{}, "how am i doing")

	lines := strings.Split(reply.Text, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "It's 15:09 on Friday, March 14, 2025.", lines[0])
	assert.Equal(t, "Battery at 80%, charging.", lines[1])
	assert.Equal(t, "CPU: 12.3%, Memory: 40.5%.", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Fun fact: "), "got %q", lines[3])
}

func TestRespond_Summary_DegradedProbes(t *testing.T) {
	r, d := newTestResponder(t)
	d.info.battErr = errors.New("no battery")
	d.info.usageErr = errors.New("no cpu data")

	text := r.Summary()
	assert.Contains(t, text, "Battery info not available.")
	assert.Contains(t, text, "Usage info not available.")
}

func TestRespond_OpenApp(t *testing.T) {
	t.Run("known app", func(t *testing.T) {
		r, d := newTestResponder(t)
		reply := r.Respond(&State{}, "open chrome")
		assert.Equal(t, "Launching Chrome...", reply.Text)
		assert.Equal(t, []string{"chrome"}, d.launcher.opened)
	})

	t.Run("unknown app", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.launcher.openErr = sysops.ErrUnknownApp
		reply := r.Respond(&State{}, "open notepad")
		assert.Equal(t, "I don't know how to open notepad.", reply.Text)
	})

	t.Run("launch failure", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.launcher.openErr = errors.New("permission denied")
		reply := r.Respond(&State{}, "open chrome")
		assert.Equal(t, "Couldn't launch chrome.", reply.Text)
	})
}

func TestRespond_Clipboard(t *testing.T) {
	t.Run("has text", func(t *testing.T) {
		r, _ := newTestResponder(t)
		reply := r.Respond(&State{}, "read clipboard")
		assert.Equal(t, "Clipboard says:\ncopied text", reply.Text)
	})

	t.Run("truncates at 300 runes", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.clipboard.text = strings.Repeat("x", 500)
		reply := r.Respond(&State{}, "clipboard")
		assert.Equal(t, "Clipboard says:\n"+strings.Repeat("x", 300), reply.Text)
	})

	t.Run("empty", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.clipboard.text = ""
		reply := r.Respond(&State{}, "clipboard")
		assert.Equal(t, "Clipboard is empty or not text.", reply.Text)
	})

	t.Run("read failure", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.clipboard.err = errors.New("no display")
		reply := r.Respond(&State{}, "clipboard")
		assert.Equal(t, "Sorry, I couldn't read the clipboard.", reply.Text)
	})
}

func TestRespond_Goodbye(t *testing.T) {
	for _, input := range []string{"exit", "quit", "close", "bye"} {
		t.Run(input, func(t *testing.T) {
			r, _ := newTestResponder(t)
			reply := r.Respond(&State{}, input)
			assert.Equal(t, "Goodbye! Shutting down...", reply.Text)
			assert.True(t, reply.Quit)
		})
	}

	t.Run("not exact no quit", func(t *testing.T) {
		r, _ := newTestResponder(t)
		reply := r.Respond(&State{}, "goodbye")
		assert.False(t, reply.Quit)
	})
}

func TestRespond_RecentFiles(t *testing.T) {
	t.Run("lists newest first", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.recent.entries = []sysops.Entry{
			{Name: "notes.txt", ModTime: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
			{Name: "report.pdf", ModTime: time.Date(2025, 3, 13, 18, 0, 0, 0, time.UTC)},
		}
		reply := r.Respond(&State{}, "show recent files")
		assert.Equal(t,
			"Here are your 3 most recent files in Documents:\n"+
				"notes.txt (2025-03-14 09:30)\n"+
				"report.pdf (2025-03-13 18:00)",
			reply.Text)
	})

	t.Run("missing documents dir", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.recent.err = sysops.ErrMissingDir
		reply := r.Respond(&State{}, "recent files")
		assert.Equal(t, "I couldn't find the Documents folder.", reply.Text)
	})

	t.Run("empty", func(t *testing.T) {
		r, _ := newTestResponder(t)
		reply := r.Respond(&State{}, "recent files")
		assert.Equal(t, "No recent files found.", reply.Text)
	})
}

func TestRespond_Wifi(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		r, _ := newTestResponder(t)
		reply := r.Respond(&State{}, "wifi status")
		assert.Equal(t, "Wi-Fi 'HomeNet' is connected with signal strength 87%.", reply.Text)
	})

	t.Run("query failure", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.info.wifiErr = errors.New("nmcli missing")
		reply := r.Respond(&State{}, "network info")
		assert.Equal(t, "Sorry, I couldn't get the Wi-Fi information.", reply.Text)
	})

	t.Run("incomplete fields", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.info.wifiErr = fmt.Errorf("netsh output: %w", sysinfo.ErrIncompleteWifi)
		reply := r.Respond(&State{}, "wifi info")
		assert.Equal(t, "Could not retrieve complete Wi-Fi information.", reply.Text)
	})
}

func TestRespond_Greeting(t *testing.T) {
	r, _ := newTestResponder(t)

	assert.Equal(t, "Hello.", r.Respond(&State{}, "hi").Text)
	assert.Equal(t, "Hello.", r.Respond(&State{}, "hello").Text)
	// Only exact matches greet; anything longer falls through.
	assert.Equal(t, fallbackText, r.Respond(&State{}, "hi there").Text)
}

func TestRespond_Mute(t *testing.T) {
	t.Run("mute", func(t *testing.T) {
		r, d := newTestResponder(t)
		reply := r.Respond(&State{}, "mute audio")
		assert.Equal(t, "Audio muted.", reply.Text)
		assert.Equal(t, []bool{true}, d.audio.calls)
	})

	t.Run("unmute", func(t *testing.T) {
		r, d := newTestResponder(t)
		reply := r.Respond(&State{}, "unmute sound")
		assert.Equal(t, "Audio unmuted.", reply.Text)
		assert.Equal(t, []bool{false}, d.audio.calls)
	})

	t.Run("failure", func(t *testing.T) {
		r, d := newTestResponder(t)
		d.audio.err = errors.New("no endpoint")
		reply := r.Respond(&State{}, "mute sound")
		assert.Equal(t, "Sorry, I couldn't mute the audio.", reply.Text)
	})
}

func TestRespond_Fallback(t *testing.T) {
	r, _ := newTestResponder(t)
	assert.Equal(t, fallbackText, r.Respond(&State{}, "flurble").Text)
	assert.Equal(t, fallbackText, r.Respond(&State{}, "").Text)
}

func TestRespond_UsageFailure(t *testing.T) {
	r, d := newTestResponder(t)
	d.info.usageErr = errors.New("proc unreadable")
	reply := r.Respond(&State{}, "how is my memory")
	assert.Equal(t, "Sorry, I couldn't read system usage.", reply.Text)
}
