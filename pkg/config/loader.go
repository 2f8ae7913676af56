package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when Load is called without explicit files.
const DefaultEnvFile = ".env"

// Validator is implemented by configuration structs that check invariants
// env tags cannot express.
type Validator interface {
	Validate() error
}

// Load reads the given dotenv files into the process environment and parses
// it into a new T. Variables already present in the environment win over file
// values. Without explicit files, a missing DefaultEnvFile is not an error.
//
// Example:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":9292"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](files ...string) (T, error) {
	var cfg T

	if err := loadEnvFiles(files); err != nil {
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return cfg, errors.Join(ErrInvalidConfig, err)
		}
	}

	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](files ...string) T {
	cfg, err := Load[T](files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
