package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/joshyorko/scriptboard/common"
)

var (
	ErrNoInterpreter = errors.New("no Python interpreter found")
)

// ResolveInterpreter returns the interpreter to launch scripts with: the
// explicit one when given, otherwise the first candidate found on PATH.
func ResolveInterpreter(explicit string, candidates []string, lookPath func(string) (string, error)) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	explicit = strings.TrimSpace(explicit)
	if len(explicit) > 0 {
		if strings.ContainsAny(explicit, `/\`) {
			err := executable(explicit)
			if err != nil {
				return "", fmt.Errorf("interpreter %q: %w", explicit, err)
			}
			return explicit, nil
		}
		found, err := lookPath(explicit)
		if err != nil {
			return "", fmt.Errorf("interpreter %q: %w", explicit, err)
		}
		return found, nil
	}
	for _, candidate := range candidates {
		found, err := lookPath(candidate)
		if err == nil {
			common.Debug("Using interpreter %q (%s).", found, candidate)
			return found, nil
		}
	}
	return "", fmt.Errorf("%w (tried %s)", ErrNoInterpreter, strings.Join(candidates, ", "))
}
