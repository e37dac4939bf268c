package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conf-cli/conf/internal/branding"
	"github.com/spf13/viper"
)

const (
	homeKey    = "home"
	verboseKey = "verbose"
)

// ErrHomeUnresolvable is returned when no home directory can be determined.
var ErrHomeUnresolvable = errors.New("could not determine home directory")

// newViper returns a Viper instance bound to the few environment values the
// bootstrap layer reads. A fresh instance per call keeps tests that use
// t.Setenv independent of each other.
func newViper() *viper.Viper {
	v := viper.New()
	_ = v.BindEnv(homeKey, "HOME")
	_ = v.BindEnv(verboseKey, branding.EnvVar(verboseKey))
	return v
}

// HomeDir returns the user's home directory. $HOME wins; otherwise the
// platform lookup from os.UserHomeDir is used.
func HomeDir() (string, error) {
	// Same as os.UserHomeDir on Unix; on Windows and plan9 it lets $HOME
	// override %USERPROFILE% and $home.
	if home := newViper().GetString(homeKey); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeUnresolvable, err)
	}
	if home == "" {
		return "", ErrHomeUnresolvable
	}
	return home, nil
}

// Path returns the full path to the config document (~/.conf.json).
func Path() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, branding.ConfigFile()), nil
}

// Verbose reports whether CONF_VERBOSE asks for debug diagnostics.
func Verbose() bool {
	return newViper().GetBool(verboseKey)
}
