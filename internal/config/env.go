package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvLoader loads environment variables from a .env file so settings
// can live beside the repository being analyzed instead of the shell
// profile.
type EnvLoader struct {
	loaded bool
	path   string
}

// NewEnvLoader creates an environment loader.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{}
}

// Load loads variables from the nearest .env file, searching the
// current directory and its parents. A missing .env is not an error;
// the config file and real environment still apply.
func (e *EnvLoader) Load() error {
	if e.loaded {
		return nil
	}

	envPath, ok := findEnvFile()
	if !ok {
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	e.path = envPath
	e.loaded = true
	return nil
}

// Path returns the path of the loaded .env file, if any.
func (e *EnvLoader) Path() string {
	return e.path
}

// findEnvFile searches for .env in the current and parent directories
// (max 5 levels).
func findEnvFile() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}

	searchPath := cwd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(searchPath, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
		parent := filepath.Dir(searchPath)
		if parent == searchPath {
			break
		}
		searchPath = parent
	}

	return "", false
}
