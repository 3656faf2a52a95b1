package common

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

const (
	Version = `v0.4.2`
)

type (
	Verbosity uint32

	// ExitCode is panicked by pretty.Exit and recovered by main, so that
	// deferred cleanups and log flushing still happen before os.Exit.
	ExitCode struct {
		Code    int
		Message string
	}
)

const (
	Normal Verbosity = iota
	Silently
	Debugging
	Tracing
)

var (
	LogLinenumbers bool
	LogHides       []string
	Product        ProductStrategy
	When           int64

	verbosity atomic.Uint32
)

func init() {
	When = time.Now().Unix()
	Product = ScriptboardMode()
}

func DefineVerbosity(silent, debug, trace bool) {
	override := os.Getenv("SCRIPTBOARD_VERBOSITY")
	switch {
	case silent || override == "silent":
		verbosity.Store(uint32(Silently))
	case trace || override == "trace":
		verbosity.Store(uint32(Tracing))
	case debug || override == "debug":
		verbosity.Store(uint32(Debugging))
	default:
		verbosity.Store(uint32(Normal))
	}
}

func Silent() bool {
	return Verbosity(verbosity.Load()) == Silently
}

func DebugFlag() bool {
	return Verbosity(verbosity.Load()) >= Debugging
}

func TraceFlag() bool {
	return Verbosity(verbosity.Load()) == Tracing
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Fatal(fmt.Sprintf("exit %d", it.Code), fmt.Errorf("%s", it.Message))
	}
}
