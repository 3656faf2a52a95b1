package common

import (
	"fmt"
	"time"
)

type (
	Duration time.Duration

	stopwatch struct {
		message string
		started time.Time
	}
)

func (it Duration) String() string {
	return fmt.Sprintf("%5.3f", time.Duration(it).Seconds())
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(form, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Debug("%s %ss", it.message, elapsed)
	return elapsed
}
