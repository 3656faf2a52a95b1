package pretty

import (
	"testing"

	"github.com/joshyorko/scriptboard/common"
)

func TestDetectColorMode(t *testing.T) {
	defer func() {
		colorModeDetected = false
	}()

	tests := []struct {
		name      string
		noColor   string
		colorterm string
		term      string
		expected  ColorMode
	}{
		{
			name:     "NO_COLOR set disables colors",
			noColor:  "1",
			term:     "xterm-256color",
			expected: ColorModeNone,
		},
		{
			name:      "COLORTERM=truecolor enables TrueColor",
			colorterm: "truecolor",
			term:      "xterm-256color",
			expected:  ColorModeTrueColor,
		},
		{
			name:      "COLORTERM=24bit enables TrueColor",
			colorterm: "24bit",
			term:      "xterm",
			expected:  ColorModeTrueColor,
		},
		{
			name:     "TERM=xterm-256color enables 256 colors",
			term:     "xterm-256color",
			expected: ColorMode256,
		},
		{
			name:     "TERM=dumb disables colors",
			term:     "dumb",
			expected: ColorModeNone,
		},
		{
			name:     "Empty TERM disables colors",
			term:     "",
			expected: ColorModeNone,
		},
		{
			name:     "TERM=xterm enables basic colors",
			term:     "xterm",
			expected: ColorModeBasic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colorModeDetected = false
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("COLORTERM", tt.colorterm)
			t.Setenv("TERM", tt.term)

			result := DetectColorMode()
			if result != tt.expected {
				t.Errorf("DetectColorMode() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDetectColorModeIsCached(t *testing.T) {
	defer func() {
		colorModeDetected = false
	}()
	colorModeDetected = false
	t.Setenv("NO_COLOR", "")
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	first := DetectColorMode()

	t.Setenv("TERM", "dumb")
	if second := DetectColorMode(); second != first {
		t.Errorf("DetectColorMode() changed from %v to %v without reset", first, second)
	}
}

func TestSeverityColor(t *testing.T) {
	origColorless := Colorless
	origDisabled := Disabled
	defer func() {
		Colorless = origColorless
		Disabled = origDisabled
	}()

	Colorless = false
	Disabled = false

	tests := []struct {
		level    string
		expected string
	}{
		{"debug", Grey},
		{"info", White},
		{"warning", Yellow},
		{"warn", Yellow},
		{"error", Red},
		{"critical", csif("91;1m")},
		{"fatal", csif("91;1m")},
		{"unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			result := SeverityColor(tt.level)
			if result != tt.expected {
				t.Errorf("SeverityColor(%q) = %q, want %q", tt.level, result, tt.expected)
			}
		})
	}

	Colorless = true
	if result := SeverityColor("error"); result != "" {
		t.Errorf("SeverityColor() in colorless mode should return empty string, got %q", result)
	}
}

func TestGuardPanicsWithExitCode(t *testing.T) {
	defer func() {
		exit, ok := recover().(common.ExitCode)
		if !ok {
			t.Fatal("Guard(false, ...) should panic with common.ExitCode")
		}
		if exit.Code != 7 || exit.Message != "bad thing" {
			t.Errorf("unexpected exit code %+v", exit)
		}
	}()
	Guard(true, 1, "never")
	Guard(false, 7, "bad %s", "thing")
}
