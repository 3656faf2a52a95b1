package wizard_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/joshyorko/scriptboard/hamlet"
	"github.com/joshyorko/scriptboard/wizard"
)

func TestShowRendersNumberedOptionsAndExtras(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output := &bytes.Buffer{}
	menu := wizard.NewMenu(strings.NewReader("  2 \n"), output)

	choice, err := menu.Show("Main Menu", []string{"unit 1", "Unit 2"}, []string{"0 - Exit"})
	must_be.Nil(err)
	must_be.Equal("2", choice)

	expected := "\nMain Menu\n1 - unit 1\n2 - Unit 2\n0 - Exit\n" + wizard.SelectPrompt
	must_be.Equal(expected, output.String())
}

func TestAskTrimsAndKeepsEmptyLines(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	menu := wizard.NewMenu(strings.NewReader("\r\n\tabc \r\nlast"), io.Discard)

	first, err := menu.Ask("? ")
	must_be.Nil(err)
	must_be.Equal("", first)

	second, err := menu.Ask("? ")
	must_be.Nil(err)
	must_be.Equal("abc", second)

	third, err := menu.Ask("? ")
	must_be.Nil(err)
	must_be.Equal("last", third)

	_, err = menu.Ask("? ")
	must_be.ErrorIs(io.EOF, err)
}

func TestConfirmExecuteOnlyAcceptsOne(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	menu := wizard.NewMenu(strings.NewReader("1\n0\nyes\n\n"), io.Discard)

	answer, err := menu.ConfirmExecute()
	must_be.Nil(err)
	must_be.True(answer)

	for i := 0; i < 3; i++ {
		answer, err = menu.ConfirmExecute()
		must_be.Nil(err)
		wont_be.True(answer)
	}

	_, err = menu.ConfirmExecute()
	must_be.ErrorIs(io.EOF, err)
}

func TestPauseConsumesOneLine(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output := &bytes.Buffer{}
	menu := wizard.NewMenu(strings.NewReader("whatever\nnext\n"), output)

	must_be.Nil(menu.Pause(wizard.ContinuePrompt))
	must_be.Contains(output.String(), wizard.ContinuePrompt)

	reply, err := menu.Ask("")
	must_be.Nil(err)
	must_be.Equal("next", reply)
}
