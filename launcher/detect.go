package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/settings"
)

const (
	ModeAuto     = "auto"
	ModeTerminal = "terminal"
	ModeInline   = "inline"
)

type (
	// Host describes the capabilities Detect looks at. DefaultHost probes
	// the real machine; tests provide their own.
	Host struct {
		GOOS      string
		Getenv    func(string) string
		LookPath  func(string) (string, error)
		Ancestors func() []string
	}

	Availability struct {
		Candidate Candidate
		Path      string
		Available bool
		Running   bool
	}
)

func DefaultHost() Host {
	return Host{
		GOOS:      runtime.GOOS,
		Getenv:    os.Getenv,
		LookPath:  exec.LookPath,
		Ancestors: processAncestors,
	}
}

func (it Host) Graphical() bool {
	switch it.GOOS {
	case "windows", "darwin":
		return true
	}
	return len(it.Getenv("DISPLAY")) > 0 || len(it.Getenv("WAYLAND_DISPLAY")) > 0
}

// Survey reports which configured terminals are usable on host, in
// preference order. A terminal the dashboard already runs inside is moved
// to the front.
func Survey(host Host, profiles *settings.Settings) ([]Availability, error) {
	ancestors := []string{}
	if host.GOOS == "linux" && host.Ancestors != nil {
		ancestors = host.Ancestors()
	}
	running := []Availability{}
	others := []Availability{}
	for _, profile := range profiles.TerminalsFor(host.GOOS) {
		candidate, err := NewCandidate(profile)
		if err != nil {
			return nil, err
		}
		entry := Availability{Candidate: candidate, Available: true}
		if program := candidate.Program(); len(program) > 0 {
			entry.Path, err = host.LookPath(program)
			entry.Available = err == nil
		}
		for _, ancestor := range ancestors {
			if candidate.Matches(ancestor) {
				entry.Running = true
			}
		}
		if entry.Running && entry.Available {
			running = append(running, entry)
		} else {
			others = append(others, entry)
		}
	}
	return append(running, others...), nil
}

func availableCandidates(survey []Availability) []Candidate {
	result := []Candidate{}
	for _, entry := range survey {
		if entry.Available {
			result = append(result, entry.Candidate)
		}
	}
	return result
}

// Detect picks the launch strategy for mode once, at startup.
func Detect(host Host, profiles *settings.Settings, mode string) (Launcher, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if len(mode) == 0 {
		mode = ModeAuto
	}
	switch mode {
	case ModeInline:
		return Inline(), nil
	case ModeAuto, ModeTerminal:
	default:
		return nil, fmt.Errorf("unknown launch mode %q, expected one of: %s, %s, %s", mode, ModeAuto, ModeTerminal, ModeInline)
	}
	if mode == ModeAuto && !host.Graphical() {
		common.Debug("No graphical session detected, running scripts inline.")
		return Inline(), nil
	}
	survey, err := Survey(host, profiles)
	if err != nil {
		return nil, err
	}
	candidates := availableCandidates(survey)
	if len(candidates) == 0 {
		common.Debug("No terminal program found for %s, running scripts inline.", host.GOOS)
		return Inline(), nil
	}
	return Chain(Terminal(candidates), Inline()), nil
}
