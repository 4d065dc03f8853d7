// Package config holds the settings of one conversion run.
package config

import "errors"

// Config is built once at startup and passed by value.
type Config struct {
	InputPath  string
	OutputPath string
}

// New returns a validated Config.
func New(input, output string) (Config, error) {
	cfg := Config{InputPath: input, OutputPath: output}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that both paths are set.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is empty")
	}
	if c.OutputPath == "" {
		return errors.New("output path is empty")
	}

	return nil
}
