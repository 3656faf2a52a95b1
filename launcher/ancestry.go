package launcher

import (
	"os"

	"github.com/joshyorko/scriptboard/common"
	"github.com/mitchellh/go-ps"
)

const (
	maxAncestry = 32
)

// processAncestors lists executable names from the parent process upwards.
func processAncestors() []string {
	result := []string{}
	pid := os.Getppid()
	for i := 0; i < maxAncestry; i++ {
		if pid <= 1 {
			break
		}
		process, err := ps.FindProcess(pid)
		if err != nil || process == nil {
			common.Trace("Process ancestry stops at %d: %v", pid, err)
			break
		}
		result = append(result, process.Executable())
		pid = process.PPid()
	}
	common.Trace("Process ancestry: %q", result)
	return result
}
