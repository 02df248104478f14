package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/frizinak/goconj/jehle"
	"gopkg.in/yaml.v3"
)

// Config holds defaults that flags may override.
type Config struct {
	Mood  string `yaml:"mood"`
	Color bool   `yaml:"color"`
	DB    string `yaml:"db"`
}

func Default() Config {
	return Config{Mood: jehle.Indicative}
}

// Load reads a yaml config file. Unset keys keep their default value,
// unknown keys are an error.
func Load(file string) (Config, error) {
	c := Default()
	d, err := os.ReadFile(file)
	if err != nil {
		return c, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(d))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("config %s: %w", file, err)
	}
	if c.Mood == "" {
		c.Mood = jehle.Indicative
	}

	return c, nil
}
