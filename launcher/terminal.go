package launcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/settings"
	"github.com/joshyorko/scriptboard/shell"
)

const (
	interpreterToken = "{interpreter}"
	scriptToken      = "{script}"
	titleToken       = "{title}"
)

type (
	// Candidate is one way to open a new terminal window, with its command
	// template already split into arguments.
	Candidate struct {
		Name    string
		Process string
		Args    []string
	}

	terminal struct {
		candidates []Candidate
		detach     func(args []string) error
	}
)

func NewCandidate(profile settings.Terminal) (Candidate, error) {
	args, err := shell.Split(profile.Command)
	if err != nil {
		return Candidate{}, fmt.Errorf("terminal %q: %w", profile.Name, err)
	}
	if len(args) == 0 {
		return Candidate{}, fmt.Errorf("terminal %q: empty command", profile.Name)
	}
	return Candidate{Name: profile.Name, Process: profile.Process, Args: args}, nil
}

// Program is the executable to look up; empty when the template starts
// with a token and so depends on the launch.
func (it Candidate) Program() string {
	if strings.Contains(it.Args[0], "{") {
		return ""
	}
	return it.Args[0]
}

func (it Candidate) Matches(process string) bool {
	process = strings.TrimSuffix(strings.ToLower(process), ".exe")
	if len(process) == 0 {
		return false
	}
	return process == strings.ToLower(it.Name) || process == strings.ToLower(it.Process) || process == strings.ToLower(filepath.Base(it.Program()))
}

func Title(script string) string {
	return fmt.Sprintf("%s: %s", common.SCRIPTBOARD_NAME, filepath.Base(script))
}

// Expand substitutes tokens inside every argument, after splitting, so
// paths with spaces or quotes stay single arguments.
func (it Candidate) Expand(script, interpreter string) []string {
	replacer := strings.NewReplacer(
		interpreterToken, interpreter,
		scriptToken, script,
		titleToken, Title(script),
	)
	result := make([]string, 0, len(it.Args))
	for _, arg := range it.Args {
		result = append(result, replacer.Replace(arg))
	}
	return result
}

func detachArgs(args []string) error {
	_, err := shell.New(nil, "", args...).Detach()
	return err
}

// Terminal opens scripts in a new terminal window, trying candidates in
// order until one starts.
func Terminal(candidates []Candidate) Launcher {
	return &terminal{candidates: candidates, detach: detachArgs}
}

func (it *terminal) Name() string {
	names := make([]string, 0, len(it.candidates))
	for _, candidate := range it.candidates {
		names = append(names, candidate.Name)
	}
	return fmt.Sprintf("terminal [%s]", strings.Join(names, ", "))
}

func (it *terminal) Launch(script, interpreter string) error {
	if len(it.candidates) == 0 {
		return &LaunchError{Strategy: it.Name(), Script: script, Err: errors.New("no terminal available")}
	}
	failures := make([]error, 0, len(it.candidates))
	for _, candidate := range it.candidates {
		args := candidate.Expand(script, interpreter)
		err := it.detach(args)
		if err == nil {
			common.Debug("Opened %q in %s.", script, candidate.Name)
			return nil
		}
		common.Debug("Terminal %s did not start: %v", candidate.Name, err)
		failures = append(failures, fmt.Errorf("%s: %w", candidate.Name, err))
	}
	return &LaunchError{Strategy: it.Name(), Script: script, Err: errors.Join(failures...)}
}
