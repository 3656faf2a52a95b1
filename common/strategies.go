package common

import (
	"os"
	"path/filepath"
)

const (
	SCRIPTBOARD_HOME_VARIABLE    = `SCRIPTBOARD_HOME`
	SCRIPTBOARD_PRODUCT_VARIABLE = `SCRIPTBOARD_PRODUCT_NAME`
	SCRIPTBOARD_NAME             = `scriptboard`
)

type (
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		ConfigFile() string
		SettingsFile() string
	}

	scriptboardStrategy struct {
		forcedHome string
	}
)

func ScriptboardMode() ProductStrategy {
	return &scriptboardStrategy{}
}

func (it *scriptboardStrategy) Name() string {
	if value := os.Getenv(SCRIPTBOARD_PRODUCT_VARIABLE); len(value) > 0 {
		return value
	}
	return SCRIPTBOARD_NAME
}

func (it *scriptboardStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *scriptboardStrategy) HomeVariable() string {
	return SCRIPTBOARD_HOME_VARIABLE
}

func (it *scriptboardStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(SCRIPTBOARD_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *scriptboardStrategy) ConfigFile() string {
	return filepath.Join(it.Home(), "scriptboard.yaml")
}

func (it *scriptboardStrategy) SettingsFile() string {
	return filepath.Join(it.Home(), "settings.yaml")
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}
