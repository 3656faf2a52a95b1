package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/pretty"
)

const (
	newline = '\n'

	SelectPrompt = "Select an option: "
)

// Menu renders numbered option lists and reads trimmed lines of input.
// It does no validation of its own.
type Menu struct {
	source *bufio.Reader
	sink   io.Writer
}

func NewMenu(source io.Reader, sink io.Writer) *Menu {
	return &Menu{
		source: bufio.NewReader(source),
		sink:   sink,
	}
}

func (it *Menu) Writer() io.Writer {
	return it.sink
}

func (it *Menu) Printf(form string, details ...interface{}) {
	fmt.Fprintf(it.sink, form, details...)
}

// Say writes one line of plain text.
func (it *Menu) Say(form string, details ...interface{}) {
	it.Printf(form+"\n", details...)
}

// Complain writes one line in the error color.
func (it *Menu) Complain(form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	it.Printf("%s%s%s\n", pretty.SeverityColor("error"), message, pretty.Reset)
}

// Warn writes one line in the warning color.
func (it *Menu) Warn(form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	it.Printf("%s%s%s\n", pretty.SeverityColor("warning"), message, pretty.Reset)
}

// Show prints title, 1-based numbered options and extra lines verbatim, then
// reads the user's choice.
func (it *Menu) Show(title string, options []string, extra []string) (string, error) {
	it.Printf("\n%s%s%s\n", pretty.Bold, title, pretty.Reset)
	for at, option := range options {
		it.Printf("%s%d%s - %s\n", pretty.Green, at+1, pretty.Reset, option)
	}
	for _, line := range extra {
		it.Printf("%s\n", line)
	}
	return it.Ask(SelectPrompt)
}

// Ask prints question as a prompt and returns the next line of input with
// surrounding whitespace removed. Exhausted input gives io.EOF.
// Pending log lines are flushed first, so they never land after the prompt.
func (it *Menu) Ask(question string) (string, error) {
	common.WaitLogs()
	it.Printf("%s", question)
	reply, err := it.source.ReadString(newline)
	if errors.Is(err, io.EOF) && len(reply) > 0 {
		err = nil
	}
	if err != nil {
		it.Printf("\n")
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// Pause waits until the user acknowledges message with Enter.
func (it *Menu) Pause(message string) error {
	it.Printf("\n")
	_, err := it.Ask(message)
	return err
}
