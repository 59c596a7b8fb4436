package sysinfo

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// ErrIncompleteWifi means the status command ran but its output was
// missing one of SSID, signal or state. Callers can word this failure
// differently from the command not running at all.
var ErrIncompleteWifi = errors.New("incomplete wifi fields")

// Wifi runs the platform wireless-status command and parses its output.
// Windows uses netsh, Linux uses nmcli; other platforms report an error
// and the caller apologizes to the user.
func (p *Probe) Wifi() (Wifi, error) {
	name, args, parse, err := wifiCommand()
	if err != nil {
		return Wifi{}, err
	}
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		p.log.Warn("wifi status command failed",
			zap.String("command", name), zap.Error(err))
		return Wifi{}, fmt.Errorf("run %s: %w", name, err)
	}
	return parse(string(out))
}

func wifiCommand() (string, []string, func(string) (Wifi, error), error) {
	switch runtime.GOOS {
	case "windows":
		return "netsh", []string{"wlan", "show", "interfaces"}, parseNetsh, nil
	case "linux":
		return "nmcli", []string{"-t", "-f", "active,ssid,signal", "dev", "wifi"}, parseNmcli, nil
	default:
		return "", nil, nil, fmt.Errorf("wifi status not supported on %s", runtime.GOOS)
	}
}

// parseNetsh extracts SSID, Signal and State from `netsh wlan show
// interfaces` output by fixed field-prefix matching. BSSID lines do not
// match the SSID prefix and are skipped.
func parseNetsh(out string) (Wifi, error) {
	var w Wifi
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		_, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)
		switch {
		case strings.HasPrefix(line, "SSID"):
			w.SSID = val
		case strings.HasPrefix(line, "Signal"):
			w.Signal = val
		case strings.HasPrefix(line, "State"):
			w.State = val
		}
	}
	if w.SSID == "" || w.Signal == "" || w.State == "" {
		return w, fmt.Errorf("netsh output: %w", ErrIncompleteWifi)
	}
	return w, nil
}

// parseNmcli reads `nmcli -t -f active,ssid,signal dev wifi` terse
// output and picks the active network.
func parseNmcli(out string) (Wifi, error) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(strings.TrimSpace(line), ":")
		if len(fields) < 3 || fields[0] != "yes" {
			continue
		}
		return Wifi{
			SSID:   fields[1],
			Signal: fields[2] + "%",
			State:  "connected",
		}, nil
	}
	return Wifi{}, fmt.Errorf("no active wifi network in nmcli output")
}
