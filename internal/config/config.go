package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// dateLayout is the calendar-date format for window boundaries.
const dateLayout = "2006-01-02"

// Config holds all settings. It is read once at startup and passed into
// components explicitly; nothing downstream consults ambient state.
type Config struct {
	Repo   RepoConfig   `mapstructure:"repo"`
	Window WindowConfig `mapstructure:"window"`
}

// RepoConfig identifies the repository and the author to attribute.
type RepoConfig struct {
	Path   string `mapstructure:"path"`   // repository root
	Author string `mapstructure:"author"` // author display name, e.g. "Jane Doe"
}

// WindowConfig is the inclusive calendar window, YYYY-MM-DD. The window
// is fixed by configuration edits, not runtime flags.
type WindowConfig struct {
	Since string `mapstructure:"since"`
	Until string `mapstructure:"until"`
}

// Load reads configuration from cfgFile, or from .git-scripts.yaml in
// the working directory or home directory when cfgFile is empty.
// GITSCRIPTS_* environment variables override file values, e.g.
// GITSCRIPTS_REPO_AUTHOR.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".git-scripts")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	// Defaults register the keys so environment overrides apply even
	// without a config file.
	v.SetDefault("repo.path", "")
	v.SetDefault("repo.author", "")
	v.SetDefault("window.since", "")
	v.SetDefault("window.until", "")

	v.SetEnvPrefix("GITSCRIPTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file: environment variables alone may still carry
		// the required settings; Validate decides.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate enforces the required settings. A failure here is fatal;
// nothing downstream runs.
func (c *Config) Validate() error {
	if c.Repo.Path == "" {
		return fmt.Errorf("repo.path is required (repository root to analyze)")
	}
	if c.Repo.Author == "" {
		return fmt.Errorf("repo.author is required (author display name)")
	}

	since, err := parseDate("window.since", c.Window.Since)
	if err != nil {
		return err
	}
	until, err := parseDate("window.until", c.Window.Until)
	if err != nil {
		return err
	}
	if until.Before(since) {
		return fmt.Errorf("window.until %s precedes window.since %s", c.Window.Until, c.Window.Since)
	}

	return nil
}

func parseDate(key, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required (YYYY-MM-DD)", key)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD, got %q", key, value)
	}
	return t, nil
}
