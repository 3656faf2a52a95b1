package interactive

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshyorko/scriptboard/catalog"
	"github.com/joshyorko/scriptboard/hamlet"
)

type printed struct {
	contents []string
}

func (it *printed) View(script catalog.ScriptItem, content string) error {
	it.contents = append(it.contents, content)
	return nil
}

func testPager(interactive bool, height int, runErr error) (*Pager, *printed, *[]tea.Model) {
	fallback := &printed{}
	models := []tea.Model{}
	return &Pager{
		fallback:    fallback,
		interactive: func() bool { return interactive },
		height:      func() int { return height },
		run: func(model tea.Model) error {
			models = append(models, model)
			return runErr
		},
	}, fallback, &models
}

func longScript(lines int) string {
	builder := strings.Builder{}
	for at := 0; at < lines; at++ {
		builder.WriteString("print('line')\n")
	}
	return builder.String()
}

func TestPagerPrintsWhenNotInteractive(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, fallback, models := testPager(false, 10, nil)
	must_be.Nil(sut.View(catalog.NewScriptItem("/tmp/a.py"), longScript(100)))
	must_be.Length(1, fallback.contents)
	must_be.Length(0, *models)
}

func TestPagerPrintsShortScripts(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, fallback, models := testPager(true, 24, nil)
	must_be.Nil(sut.View(catalog.NewScriptItem("/tmp/a.py"), longScript(20)))
	must_be.Length(1, fallback.contents)
	must_be.Length(0, *models)
}

func TestPagerPagesLongScripts(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, fallback, models := testPager(true, 24, nil)
	must_be.Nil(sut.View(catalog.NewScriptItem("/tmp/a.py"), longScript(21)))
	must_be.Length(0, fallback.contents)
	must_be.Length(1, *models)
}

func TestPagerFailureFallsBackToPrinting(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, fallback, models := testPager(true, 5, errors.New("no tty"))
	must_be.Nil(sut.View(catalog.NewScriptItem("/tmp/a.py"), longScript(30)))
	must_be.Length(1, fallback.contents)
	must_be.Length(1, *models)
}

func TestLineCount(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal(1, lineCount(""))
	must_be.Equal(1, lineCount("one\n"))
	must_be.Equal(2, lineCount("one\ntwo"))
	must_be.Equal(3, lineCount("one\n\nthree\n\n"))
}

func TestPagerModelScrollsAndQuits(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	model := newPagerModel(catalog.NewScriptItem("/tmp/long.py"), longScript(50))
	must_be.Contains(model.View(), "Loading")

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 40, Height: 14})
	must_be.Nil(cmd)
	model = updated.(*pagerModel)
	must_be.True(model.ready)
	must_be.Equal(10, model.viewport.Height)
	must_be.True(model.viewport.AtTop())

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	must_be.True(model.viewport.AtBottom())

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	must_be.True(model.viewport.AtTop())

	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	wont_be.True(model.viewport.AtTop())

	view := model.View()
	must_be.Contains(view, "long.py")
	must_be.Contains(view, "back to menu")

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	wont_be.Nil(cmd)
	_, quitting := cmd().(tea.QuitMsg)
	must_be.True(quitting)
}
