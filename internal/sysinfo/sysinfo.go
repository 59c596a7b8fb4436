// Package sysinfo probes host state: battery charge, CPU and memory
// usage, and Wi-Fi link status. Probes are best-effort; callers decide
// how to phrase failures.
package sysinfo

import (
	"fmt"
	"time"

	dbattery "github.com/distatus/battery"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

// CPUSampleWindow is how long Usage blocks while sampling CPU load.
// The caller runs on the UI loop and accepts the freeze.
const CPUSampleWindow = 500 * time.Millisecond

// Battery is a snapshot of the primary battery.
type Battery struct {
	Percent  float64
	Charging bool
}

// Usage is a point-in-time CPU/memory load snapshot.
type Usage struct {
	CPUPercent float64
	MemPercent float64
}

// Wifi describes the active wireless interface.
type Wifi struct {
	SSID   string
	Signal string
	State  string
}

// Probe queries the host it runs on.
type Probe struct {
	log *zap.Logger
}

// NewProbe returns a host probe. A nil logger is replaced with a no-op.
func NewProbe(log *zap.Logger) *Probe {
	if log == nil {
		log = zap.NewNop()
	}
	return &Probe{log: log}
}

// Battery reads the first battery reported by the host. Hosts without a
// battery (desktops, some VMs) return an error.
func (p *Probe) Battery() (Battery, error) {
	bats, err := dbattery.GetAll()
	// GetAll can report partial errors alongside usable readings.
	if err != nil && len(bats) == 0 {
		return Battery{}, fmt.Errorf("battery query: %w", err)
	}
	if len(bats) == 0 {
		return Battery{}, fmt.Errorf("no battery present")
	}
	b := bats[0]
	if b.Full == 0 {
		return Battery{}, fmt.Errorf("battery reports zero capacity")
	}
	return Battery{
		Percent:  b.Current / b.Full * 100,
		Charging: b.State.Raw == dbattery.Charging || b.State.Raw == dbattery.Full,
	}, nil
}

// Usage samples CPU load over CPUSampleWindow and reads memory usage.
// The call blocks for the full sample window.
func (p *Probe) Usage() (Usage, error) {
	pcts, err := cpu.Percent(CPUSampleWindow, false)
	if err != nil {
		return Usage{}, fmt.Errorf("cpu sample: %w", err)
	}
	if len(pcts) == 0 {
		return Usage{}, fmt.Errorf("cpu sample returned no data")
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Usage{}, fmt.Errorf("memory query: %w", err)
	}
	return Usage{CPUPercent: pcts[0], MemPercent: vm.UsedPercent}, nil
}
