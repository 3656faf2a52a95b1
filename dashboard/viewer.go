package dashboard

import (
	"github.com/joshyorko/scriptboard/catalog"
	"github.com/joshyorko/scriptboard/wizard"
)

// Viewer displays the content of a script that was read successfully.
type Viewer interface {
	View(script catalog.ScriptItem, content string) error
}

type printer struct {
	menu *wizard.Menu
}

// Printer writes the content straight into the menu's output.
func Printer(menu *wizard.Menu) Viewer {
	return &printer{menu: menu}
}

func (it *printer) View(script catalog.ScriptItem, content string) error {
	it.menu.Printf("\n"+msgCodeHeader+"\n\n", script.Name)
	it.menu.Say("%s", content)
	return nil
}
