// Package settings loads the user settings of wsl-orchestrator from an optional
// YAML file and from WSL_ORCHESTRATOR_* environment variables.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/ubuntu/decorate"
	orchestrator "github.com/ubuntu/wsl-orchestrator"
)

// EnvPrefix is the prefix of the environment variables that override settings.
const EnvPrefix = "WSL_ORCHESTRATOR"

// Output formats.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Settings are read once at startup and never modified.
type Settings struct {
	// StorageRoot is where renamed distros are imported into.
	StorageRoot string `mapstructure:"storage_root"`

	// RefreshDelay is how long to wait after starting a distro before listing again.
	RefreshDelay time.Duration `mapstructure:"refresh_delay"`

	// Output is the format of listings: table or yaml.
	Output string `mapstructure:"output"`
}

// DefaultPath is the settings file read when none is specified.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wsl-orchestrator", "config.yaml"), nil
}

// Load reads the settings. An empty path means the default settings file,
// which is optional; an explicit path must exist. Environment variables
// take precedence over the file.
func Load(path string) (s Settings, err error) {
	defer decorate.OnError(&err, "could not load settings")

	v := viper.New()

	storageRoot, err := orchestrator.DefaultStorageRoot()
	if err != nil {
		return s, err
	}
	v.SetDefault("storage_root", storageRoot)
	v.SetDefault("refresh_delay", 1500*time.Millisecond)
	v.SetDefault("output", OutputTable)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		if path, err = DefaultPath(); err != nil {
			return s, err
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return s, err
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, err
	}

	return s, s.validate()
}

func (s Settings) validate() error {
	if s.StorageRoot == "" {
		return errors.New("storage_root cannot be empty")
	}
	if s.RefreshDelay < 0 {
		return fmt.Errorf("refresh_delay cannot be negative: %s", s.RefreshDelay)
	}
	switch s.Output {
	case OutputTable, OutputYAML:
	default:
		return fmt.Errorf("output must be %q or %q, not %q", OutputTable, OutputYAML, s.Output)
	}
	return nil
}
