package main

import (
	"bytes"
	"io"
	"os"

	"github.com/jpschroeder/polish"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the contents of the optional YAML config file.
type Config struct {
	Prompt      string             `yaml:"prompt"`
	HistoryFile string             `yaml:"history_file"`
	Color       *bool              `yaml:"color"`
	CacheSize   *int               `yaml:"cache_size"`
	Variables   map[string]float64 `yaml:"variables"`
	// Aliases maps a new function name to a built-in function.
	Aliases map[string]string `yaml:"aliases"`
}

const defaultPrompt = "polish=> "

func DefaultConfig() *Config {
	color := true
	cacheSize := polish.DefaultCacheSize
	return &Config{
		Prompt:    defaultPrompt,
		Color:     &color,
		CacheSize: &cacheSize,
	}
}

// LoadConfig reads the config file at path. An empty path gives the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML config. Fields that are not set keep their
// default values; unknown fields are an error.
func ParseConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that variable and alias names are names of the language
// and that aliases point to built-in functions.
func (c *Config) Validate() error {
	for name := range c.Variables {
		if !isName(name) {
			return errors.Errorf("variable %q is not a valid name", name)
		}
	}
	for name, target := range c.Aliases {
		if !isName(name) {
			return errors.Errorf("alias %q is not a valid name", name)
		}
		if _, ok := polish.LookupFunction(target); !ok {
			return errors.Errorf("alias %q refers to unknown function %q", name, target)
		}
	}
	if c.CacheSize != nil && *c.CacheSize < 0 {
		return errors.Errorf("cache_size must not be negative, got %d", *c.CacheSize)
	}
	return nil
}

func isName(s string) bool {
	tokens, err := polish.Scan(s)
	return err == nil && len(tokens) == 1 && tokens[0].Kind == polish.NameToken
}

// Apply installs the configured variables and aliases into env.
func (c *Config) Apply(env *polish.Environment) {
	for name, v := range c.Variables {
		env.SetVar(name, v)
	}
	for name, target := range c.Aliases {
		if f, ok := polish.LookupFunction(target); ok {
			env.SetFunc(name, f)
		}
	}
}
