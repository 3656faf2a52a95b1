package catalog

// Library is the view of the filesystem the dashboard navigates.
type Library interface {
	Units(root string) ([]Unit, error)
	Subfolders(unit Unit) ([]Subfolder, error)
	Scripts(folder Subfolder) ([]ScriptItem, error)
	Read(script ScriptItem) (string, error)
}

type filesystem struct{}

// Filesystem returns a Library reading the live filesystem on every call.
func Filesystem() Library {
	return filesystem{}
}

func (filesystem) Units(root string) ([]Unit, error) {
	return Units(root)
}

func (filesystem) Subfolders(unit Unit) ([]Subfolder, error) {
	return Subfolders(unit)
}

func (filesystem) Scripts(folder Subfolder) ([]ScriptItem, error) {
	return ListScripts(folder.Path)
}

func (filesystem) Read(script ScriptItem) (string, error) {
	return ReadText(script.Path)
}
