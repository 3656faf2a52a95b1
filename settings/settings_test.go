package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshyorko/scriptboard/hamlet"
	"github.com/joshyorko/scriptboard/settings"
)

func TestDefaultsCoverEverySupportedPlatform(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := settings.Defaults()
	wont_be.Nil(sut)

	must_be.Equal([]string{"python3", "python", "py"}, sut.InterpreterCandidates())
	for _, goos := range []string{"linux", "darwin", "windows"} {
		terminals := sut.TerminalsFor(goos)
		must_be.True(len(terminals) > 0)
		for _, terminal := range terminals {
			wont_be.Equal("", terminal.Name)
			must_be.Contains(terminal.Command, "{script}")
			must_be.Contains(terminal.Command, "{interpreter}")
		}
	}
	must_be.Equal("x-terminal-emulator", sut.TerminalsFor("linux")[0].Name)
	must_be.Length(0, sut.TerminalsFor("plan9"))
}

func TestMissingUserFileGivesDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, err := settings.Load(filepath.Join(t.TempDir(), "settings.yaml"))
	must_be.Nil(err)
	must_be.Equal(settings.Defaults(), sut)
}

func TestUserFileOverridesPerPlatform(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "settings.yaml")
	custom := `
interpreters:
  - /opt/python/bin/python3.12
terminals:
  linux:
    - name: foot
      command: foot --title {title} {interpreter} {script}
`
	must_be.Nil(os.WriteFile(filename, []byte(custom), 0o644))

	sut, err := settings.Load(filename)
	must_be.Nil(err)
	must_be.Equal([]string{"/opt/python/bin/python3.12"}, sut.InterpreterCandidates())
	must_be.Equal([]settings.Terminal{{Name: "foot", Command: "foot --title {title} {interpreter} {script}"}}, sut.TerminalsFor("linux"))
	must_be.Equal(settings.Defaults().TerminalsFor("darwin"), sut.TerminalsFor("darwin"))
}

func TestBrokenUserFileIsAnError(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "settings.yaml")
	must_be.Nil(os.WriteFile(filename, []byte("terminals: [this is: not right"), 0o644))

	sut, err := settings.Load(filename)
	wont_be.Nil(err)
	must_be.Nil(sut)

	must_be.Nil(os.WriteFile(filename, []byte("unknown_key: true\n"), 0o644))
	_, err = settings.Load(filename)
	wont_be.Nil(err)
}

func TestSettingsCanBeShownAsYaml(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	content, err := settings.Defaults().AsYaml()
	must_be.Nil(err)
	must_be.Contains(string(content), "gnome-terminal-server")
}
