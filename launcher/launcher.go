package launcher

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/pretty"
	"github.com/joshyorko/scriptboard/shell"
)

type (
	Launcher interface {
		Name() string
		Launch(script, interpreter string) error
	}

	// LaunchError means no process could be started for script.
	LaunchError struct {
		Strategy string
		Script   string
		Err      error
	}

	inline struct {
		interactive bool
	}

	chain struct {
		primary  Launcher
		fallback Launcher
	}
)

func (it *LaunchError) Error() string {
	return fmt.Sprintf("could not launch %q (%s): %v", filepath.Base(it.Script), it.Strategy, it.Err)
}

func (it *LaunchError) Unwrap() error {
	return it.Err
}

// Inline runs scripts in the foreground, attached to the current console,
// and blocks until they exit.
func Inline() Launcher {
	return &inline{interactive: true}
}

func (it *inline) Name() string {
	return "inline"
}

func (it *inline) Launch(script, interpreter string) error {
	code, err := shell.New(nil, "", interpreter, script).Execute(it.interactive)
	if err != nil {
		return &LaunchError{Strategy: it.Name(), Script: script, Err: err}
	}
	if code != 0 {
		pretty.Warning("Script %q exited with code %d.", filepath.Base(script), code)
	}
	return nil
}

// Chain tries primary first and falls back when it cannot start anything.
func Chain(primary, fallback Launcher) Launcher {
	return &chain{primary: primary, fallback: fallback}
}

func (it *chain) Name() string {
	return fmt.Sprintf("%s, falling back to %s", it.primary.Name(), it.fallback.Name())
}

func (it *chain) Launch(script, interpreter string) error {
	err := it.primary.Launch(script, interpreter)
	if err == nil {
		return nil
	}
	common.Debug("Primary launcher failed: %v", err)
	fallback := it.fallback.Launch(script, interpreter)
	if fallback == nil {
		return nil
	}
	return &LaunchError{Strategy: it.Name(), Script: script, Err: errors.Join(err, fallback)}
}
