package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joshyorko/scriptboard/common"
)

const (
	ScriptSuffix = ".py"
)

type (
	// Unit is a directory directly below the root.
	Unit struct {
		Path string
		Name string
	}

	// Subfolder is a directory directly below a unit.
	Subfolder struct {
		Path string
		Name string
	}

	// ScriptItem is a .py file directly below a subfolder.
	ScriptItem struct {
		Path string
		Name string
	}

	entryFilter func(fullpath string, info fs.FileInfo) bool
)

func NewScriptItem(path string) ScriptItem {
	return ScriptItem{Path: path, Name: filepath.Base(path)}
}

func lessFold(left, right string) bool {
	lower, upper := strings.ToLower(left), strings.ToLower(right)
	if lower != upper {
		return lower < upper
	}
	return left < right
}

func listing(path string, accept entryFilter) ([]string, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return []string{}, newReadError(IoError, path, err)
	}
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		fullpath := filepath.Join(path, entry.Name())
		// os.Stat follows symlinks, like the entry would be seen by a user
		info, err := os.Stat(fullpath)
		if err != nil {
			common.Trace("Skipping %q: %v", fullpath, err)
			continue
		}
		if accept(fullpath, info) {
			result = append(result, fullpath)
		}
	}
	sort.SliceStable(result, func(left, right int) bool {
		return lessFold(filepath.Base(result[left]), filepath.Base(result[right]))
	})
	return result, nil
}

func isDirectory(_ string, info fs.FileInfo) bool {
	return info.IsDir()
}

// isScript wants a name before the suffix; a bare ".py" has no suffix at all.
func isScript(fullpath string, info fs.FileInfo) bool {
	name := filepath.Base(fullpath)
	return info.Mode().IsRegular() && len(name) > len(ScriptSuffix) && strings.HasSuffix(name, ScriptSuffix)
}

// ListDirectories returns the immediate child directories of path, sorted by
// case-insensitive name. A missing path gives an empty listing.
func ListDirectories(path string) ([]string, error) {
	return listing(path, isDirectory)
}

// ListScripts returns the immediate .py files of path, sorted like
// ListDirectories. A missing path gives an empty listing.
func ListScripts(path string) ([]ScriptItem, error) {
	found, err := listing(path, isScript)
	result := make([]ScriptItem, 0, len(found))
	for _, fullpath := range found {
		result = append(result, NewScriptItem(fullpath))
	}
	return result, err
}

func Units(root string) ([]Unit, error) {
	found, err := ListDirectories(root)
	result := make([]Unit, 0, len(found))
	for _, fullpath := range found {
		result = append(result, Unit{Path: fullpath, Name: filepath.Base(fullpath)})
	}
	return result, err
}

func Subfolders(unit Unit) ([]Subfolder, error) {
	found, err := ListDirectories(unit.Path)
	result := make([]Subfolder, 0, len(found))
	for _, fullpath := range found {
		result = append(result, Subfolder{Path: fullpath, Name: filepath.Base(fullpath)})
	}
	return result, err
}
