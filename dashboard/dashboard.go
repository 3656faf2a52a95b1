package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/joshyorko/scriptboard/catalog"
	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/launcher"
	"github.com/joshyorko/scriptboard/wizard"
)

type (
	Config struct {
		Root        string
		Interpreter string
	}

	Dashboard struct {
		config   Config
		library  catalog.Library
		menu     *wizard.Menu
		launcher launcher.Launcher
		viewer   Viewer
	}

	Option func(*Dashboard)

	level int

	frame struct {
		level  level
		unit   catalog.Unit
		folder catalog.Subfolder
	}

	move int

	outcome struct {
		move move
		next frame
	}
)

const (
	mainMenu level = iota
	unitMenu
	scriptMenu
)

const (
	stay move = iota
	push
	pop
	exit
)

var (
	stayHere = outcome{move: stay}
	goBack   = outcome{move: pop}
	finished = outcome{move: exit}
)

func WithViewer(viewer Viewer) Option {
	return func(it *Dashboard) {
		it.viewer = viewer
	}
}

func New(config Config, library catalog.Library, menu *wizard.Menu, launch launcher.Launcher, options ...Option) *Dashboard {
	result := &Dashboard{
		config:   config,
		library:  library,
		menu:     menu,
		launcher: launch,
	}
	for _, option := range options {
		option(result)
	}
	if result.viewer == nil {
		result.viewer = Printer(menu)
	}
	return result
}

func (it level) String() string {
	switch it {
	case mainMenu:
		return "MainMenu"
	case unitMenu:
		return "UnitMenu"
	case scriptMenu:
		return "ScriptMenu"
	}
	return fmt.Sprintf("level(%d)", int(it))
}

// Run drives the menus until the user exits, no units are found, or input
// ends. Only a failing input stream is returned as an error.
func (it *Dashboard) Run(ctx context.Context) error {
	common.Debug("Dashboard root is %q, interpreter is %q.", it.config.Root, it.config.Interpreter)
	stack := []frame{{level: mainMenu}}
	for len(stack) > 0 {
		if ctx.Err() != nil {
			common.Debug("Dashboard cancelled: %v", ctx.Err())
			return nil
		}
		current := stack[len(stack)-1]
		common.Trace("Rendering %s (depth %d).", current.level, len(stack))
		result, err := it.render(current)
		if errors.Is(err, io.EOF) {
			it.menu.Say(msgExiting)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		switch result.move {
		case push:
			stack = append(stack, result.next)
		case pop:
			stack = stack[:len(stack)-1]
		case exit:
			return nil
		}
	}
	return nil
}

func (it *Dashboard) render(current frame) (outcome, error) {
	switch current.level {
	case unitMenu:
		return it.unitMenu(current.unit)
	case scriptMenu:
		return it.scriptMenu(current.folder)
	default:
		return it.mainMenu()
	}
}

// warnListing reports a failed listing; the menu carries on with whatever
// was found, usually nothing.
func (it *Dashboard) warnListing(what string, err error) {
	if err != nil {
		it.menu.Warn(msgListFailed, what, err)
	}
}

func (it *Dashboard) choose(title string, options []string, extra string) (int, bool, error) {
	choice, err := it.menu.Show(title, options, []string{extra})
	if err != nil {
		return -1, false, err
	}
	if choice == backChoice {
		return -1, true, nil
	}
	index, err := wizard.ParseIndex(choice, len(options))
	if err != nil {
		it.menu.Complain(msgInvalid)
		return -1, false, nil
	}
	return index, false, nil
}

func (it *Dashboard) mainMenu() (outcome, error) {
	units, err := it.library.Units(it.config.Root)
	it.warnListing("units", err)
	if len(units) == 0 {
		it.menu.Say(msgNoUnits)
		return finished, nil
	}
	names := make([]string, 0, len(units))
	for _, unit := range units {
		names = append(names, unit.Name)
	}
	index, back, err := it.choose(mainTitle, names, exitOption)
	switch {
	case err != nil:
		return stayHere, err
	case back:
		it.menu.Say(msgExiting)
		return finished, nil
	case index < 0:
		return stayHere, nil
	}
	return outcome{move: push, next: frame{level: unitMenu, unit: units[index]}}, nil
}

func (it *Dashboard) unitMenu(unit catalog.Unit) (outcome, error) {
	subfolders, err := it.library.Subfolders(unit)
	it.warnListing("subfolders", err)
	if len(subfolders) == 0 {
		it.menu.Say(msgNoSubfolders)
		return goBack, nil
	}
	names := make([]string, 0, len(subfolders))
	for _, folder := range subfolders {
		names = append(names, folder.Name)
	}
	index, back, err := it.choose(fmt.Sprintf(unitTitle, unit.Name), names, backOption)
	switch {
	case err != nil:
		return stayHere, err
	case back:
		return goBack, nil
	case index < 0:
		return stayHere, nil
	}
	return outcome{move: push, next: frame{level: scriptMenu, unit: unit, folder: subfolders[index]}}, nil
}

func (it *Dashboard) scriptMenu(folder catalog.Subfolder) (outcome, error) {
	scripts, err := it.library.Scripts(folder)
	it.warnListing("scripts", err)
	if len(scripts) == 0 {
		it.menu.Say(msgNoScripts)
		return goBack, nil
	}
	names := make([]string, 0, len(scripts))
	for _, script := range scripts {
		names = append(names, script.Name)
	}
	index, back, err := it.choose(fmt.Sprintf(scriptTitle, folder.Name), names, backOption)
	switch {
	case err != nil:
		return stayHere, err
	case back:
		return goBack, nil
	case index < 0:
		return stayHere, nil
	}
	err = it.inspect(scripts[index])
	if err != nil {
		return stayHere, err
	}
	return stayHere, it.menu.Pause(wizard.ContinuePrompt)
}

// inspect shows the script and, when it could be read, offers to run it.
func (it *Dashboard) inspect(script catalog.ScriptItem) error {
	content, err := it.library.Read(script)
	if err != nil {
		it.explain(err)
		return nil
	}
	err = it.viewer.View(script, content)
	if err != nil {
		it.menu.Warn(msgViewFailed, script.Name, err)
	}
	confirmed, err := it.menu.ConfirmExecute()
	if err != nil || !confirmed {
		return err
	}
	err = it.launcher.Launch(script.Path, it.config.Interpreter)
	if err != nil {
		it.menu.Warn(msgLaunchFailed, err)
	}
	return nil
}

func (it *Dashboard) explain(err error) {
	var failure *catalog.ReadError
	if !errors.As(err, &failure) {
		it.menu.Complain(msgReadFailed, err)
		return
	}
	switch failure.Kind {
	case catalog.NotFound:
		it.menu.Complain(msgNotFound)
	case catalog.DecodeError:
		it.menu.Complain(msgDecode)
	default:
		it.menu.Complain(msgReadFailed, failure.Err)
	}
}
