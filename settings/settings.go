package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joshyorko/scriptboard/common"
	"gopkg.in/yaml.v2"
)

//go:embed assets/settings.yaml
var defaultSettings []byte

type (
	Terminal struct {
		Name    string `yaml:"name"`
		Command string `yaml:"command"`
		Process string `yaml:"process,omitempty"`
	}

	Settings struct {
		Interpreters []string              `yaml:"interpreters,omitempty"`
		Terminals    map[string][]Terminal `yaml:"terminals,omitempty"`
	}
)

func parse(content []byte) (*Settings, error) {
	result := &Settings{}
	err := yaml.UnmarshalStrict(content, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func Defaults() *Settings {
	result, err := parse(defaultSettings)
	if err != nil {
		panic(fmt.Sprintf("embedded settings are broken: %v", err))
	}
	return result
}

// Load returns the built-in settings overlaid with the user file at
// filename. A missing user file is not an error.
func Load(filename string) (*Settings, error) {
	result := Defaults()
	content, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		common.Trace("No user settings at %q, using defaults.", filename)
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %q: %w", filename, err)
	}
	custom, err := parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing settings %q: %w", filename, err)
	}
	result.overlay(custom)
	common.Debug("Using user settings from %q.", filename)
	return result, nil
}

func SummonSettings() (*Settings, error) {
	return Load(common.Product.SettingsFile())
}

func (it *Settings) overlay(custom *Settings) {
	if len(custom.Interpreters) > 0 {
		it.Interpreters = custom.Interpreters
	}
	if it.Terminals == nil {
		it.Terminals = make(map[string][]Terminal)
	}
	for goos, terminals := range custom.Terminals {
		it.Terminals[goos] = terminals
	}
}

func (it *Settings) TerminalsFor(goos string) []Terminal {
	return append([]Terminal{}, it.Terminals[goos]...)
}

func (it *Settings) InterpreterCandidates() []string {
	return append([]string{}, it.Interpreters...)
}

func (it *Settings) AsYaml() ([]byte, error) {
	return yaml.Marshal(it)
}
