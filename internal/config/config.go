// Package config resolves fieldcheck CLI settings from the environment and
// optional dotenv files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when Load is called without explicit files.
const DefaultEnvFile = ".env"

// ErrParsingConfig wraps environment parsing failures.
var ErrParsingConfig = errors.New("config: parse environment")

// Config holds settings that flags may override.
type Config struct {
	// Messages is a JSON or YAML catalog override file.
	Messages string `env:"FIELDCHECK_MESSAGES"`
	// Preset is a JSON or YAML field spec preset file.
	Preset string `env:"FIELDCHECK_PRESET"`
	// Addr enables HTTP mode when no operation is selected.
	Addr      string `env:"FIELDCHECK_ADDR"`
	LogLevel  string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FIELDCHECK_LOG_FORMAT" envDefault:"text"`
	// HTTPTimeout bounds fetching a -source given as an http(s) URL.
	HTTPTimeout time.Duration `env:"FIELDCHECK_HTTP_TIMEOUT" envDefault:"30s"`
}

// Load merges the process environment with dotenv files and parses the
// result. Process variables win over file values. A missing DefaultEnvFile
// is ignored; explicitly named files must exist.
func Load(files ...string) (Config, error) {
	explicit := len(files) > 0
	if !explicit {
		files = []string{DefaultEnvFile}
	}

	environ := env.ToMap(os.Environ())
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
		for key, value := range values {
			if _, ok := environ[key]; !ok {
				environ[key] = value
			}
		}
	}
	return Parse(environ)
}

// Parse reads a Config from environ.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
