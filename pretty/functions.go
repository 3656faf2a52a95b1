package pretty

import (
	"fmt"

	"github.com/joshyorko/scriptboard/common"
)

func Ok() {
	common.Log("%sOK.%s", Green, Reset)
}

func Warning(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sWarning: %s%s", SeverityColor("warning"), format, Reset)
	common.Log(niceform, rest...)
}

func Note(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sNote: %s%s", Cyan, format, Reset)
	common.Log(niceform, rest...)
}

// Exit panics with common.ExitCode; main recovers it and exits after
// flushing logs.
func Exit(code int, format string, rest ...interface{}) {
	var message string
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	} else {
		message = format
	}
	panic(common.ExitCode{
		Code:    code,
		Message: message,
	})
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
