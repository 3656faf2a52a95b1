package pretty

import (
	"os"

	"github.com/joshyorko/scriptboard/common"
	"golang.org/x/sys/windows"
)

func localSetup(interactive bool) {
	Iconic = false
	Disabled = true
	if !interactive {
		return
	}
	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	err := windows.GetConsoleMode(handle, &mode)
	if err != nil {
		common.Trace("Could not read console mode: %v", err)
		return
	}
	err = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	if err != nil {
		common.Trace("Could not enable virtual terminal processing: %v", err)
		return
	}
	Disabled = false
}
