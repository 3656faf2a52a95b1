//go:build !windows

package shell

import (
	"os/exec"
	"syscall"
)

// detachProcess puts cmd into a new session, away from the dashboard's terminal
func detachProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
