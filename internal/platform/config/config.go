package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/georgemunganga/pcstore/internal/modules/storage"
)

// Config holds every environment-driven setting of the application.
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    string `envconfig:"APP_PORT" default:"8080"`
	Storage storage.Config
}

// Environment returns the parsed deployment environment.
func (c Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the optional .env files and then processes the environment.
// A missing .env file is not an error; the returned bool reports whether one was loaded.
func Load(files ...string) (Config, bool, error) {
	loaded := godotenv.Load(files...) == nil

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, loaded, err
	}
	return cfg, loaded, nil
}
