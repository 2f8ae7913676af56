package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/ifconfig/pkg/file"
	"github.com/dmitrymomot/ifconfig/pkg/geoip"
	"github.com/dmitrymomot/ifconfig/pkg/httpserver"
)

// Config is the process configuration read from the environment.
type Config struct {
	AppName      string `env:"APP_NAME" envDefault:"ifconfig"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
	TemplatesDir string `env:"TEMPLATES_DIR"`

	HTTP  httpserver.Config
	GeoIP geoip.Config
	S3    file.S3Config
}

var errMissingDatabasePath = errors.New("GEOIP_DB_PATH must not be empty")

// Validate is called by config.Load after parsing.
func (c *Config) Validate() error {
	if c.GeoIP.DatabasePath == "" {
		return errMissingDatabasePath
	}
	if c.TemplatesDir != "" {
		info, err := os.Stat(c.TemplatesDir)
		if err != nil {
			return fmt.Errorf("TEMPLATES_DIR: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("TEMPLATES_DIR: %s is not a directory", c.TemplatesDir)
		}
	}
	return nil
}
