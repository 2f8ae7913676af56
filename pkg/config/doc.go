// Package config loads application configuration from the environment.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses the
// environment into a struct using `env` and `envDefault` field tags.
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"ifconfig"`
//		Addr    string `env:"HTTP_ADDR" envDefault:":9292"`
//	}
//
//	cfg, err := config.Load[Config]()
//	if err != nil {
//		return err
//	}
//
// Structs implementing Validator are checked after parsing. Errors wrap
// ErrParsingConfig, ErrLoadingEnvFile or ErrInvalidConfig and can be
// matched with errors.Is.
package config
