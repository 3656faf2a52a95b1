package xviper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/joshyorko/scriptboard/common"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = `SCRIPTBOARD`
)

var (
	lock     sync.RWMutex
	instance *viper.Viper
)

func init() {
	instance = fresh()
}

func fresh() *viper.Viper {
	result := viper.New()
	result.SetEnvPrefix(EnvPrefix)
	result.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	result.AutomaticEnv()
	return result
}

// Setup starts over with a clean configuration and reads filename into it.
// Only an unreadable or malformed file is an error; a missing one is not.
func Setup(filename string) error {
	lock.Lock()
	defer lock.Unlock()

	instance = fresh()
	if len(filename) == 0 {
		return nil
	}
	_, err := os.Stat(filename)
	if errors.Is(err, fs.ErrNotExist) {
		common.Trace("No configuration file at %q.", filename)
		return nil
	}
	instance.SetConfigFile(filename)
	err = instance.ReadInConfig()
	if err != nil {
		return fmt.Errorf("configuration %q: %w", filename, err)
	}
	common.Debug("Configuration read from %q.", instance.ConfigFileUsed())
	return nil
}

func SetDefault(key string, value interface{}) {
	lock.Lock()
	defer lock.Unlock()

	instance.SetDefault(key, value)
}

// BindFlag lets an explicitly given command line flag win over file and
// environment values for key.
func BindFlag(key string, flag *pflag.Flag) error {
	lock.Lock()
	defer lock.Unlock()

	return instance.BindPFlag(key, flag)
}

func Set(key string, value interface{}) {
	lock.Lock()
	defer lock.Unlock()

	instance.Set(key, value)
}

func GetString(key string) string {
	lock.RLock()
	defer lock.RUnlock()

	return instance.GetString(key)
}

func GetBool(key string) bool {
	lock.RLock()
	defer lock.RUnlock()

	return instance.GetBool(key)
}

func ConfigFileUsed() string {
	lock.RLock()
	defer lock.RUnlock()

	return instance.ConfigFileUsed()
}
