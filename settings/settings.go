package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/blocksupport/support"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured for the support engine.
type Settings struct {
	Log struct {
		// Level is a logrus level name, e.g. "info" or "debug".
		Level string
	}
	Sentry struct {
		// DSN enables crash reporting when set.
		DSN         string
		Environment string
	}
	World struct {
		MinY, MaxY int
	}
	Scan struct {
		// Workers is the amount of goroutines a sweep uses. Zero means one per CPU.
		Workers int
	}
	Rules struct {
		// Disabled lists block identifiers whose built-in rule is removed at start-up. Their group rule, if
		// any, applies instead.
		Disabled []string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Log.Level = "info"
	s.Sentry.Environment = "production"
	s.World.MinY, s.World.MaxY = -64, 319
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if settings.World.MinY > settings.World.MaxY {
		return Settings{}, fmt.Errorf("invalid world range [%d, %d]", settings.World.MinY, settings.World.MaxY)
	}
	return settings, nil
}

// LogLevel returns the configured logrus level.
func (s Settings) LogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(s.Log.Level)
}

// ApplyRules removes the built-in rules listed in Rules.Disabled from reg.
func (s Settings) ApplyRules(reg *support.Registry) error {
	for _, name := range s.Rules.Disabled {
		k, ok := block.ByName(name)
		if !ok {
			return fmt.Errorf("disabled rule: unknown block %q", name)
		}
		reg.Unregister(k.TypeID())
	}
	return nil
}
