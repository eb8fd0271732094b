package gen

import (
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config controls artifact generation.
type Config struct {
	// Package is the full import path of the generated package.
	Package string `yaml:"package"`
	// Target is the directory generated files are written to.
	Target string `yaml:"target"`
	// Header overrides the standard generated-code header comment.
	Header string `yaml:"header"`
	// Workers limits parallel file writes. Defaults to GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// LoadConfig reads a generation config from a YAML file.
func LoadConfig(name string) (*Config, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, NewConfigError("config", name, "read config file", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, NewConfigError("config", name, "parse config file", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the required options.
func (c Config) validate() error {
	if c.Package == "" {
		return NewConfigError("Package", nil, "missing import path of the generated package", nil)
	}
	if c.Target == "" {
		return NewConfigError("Target", nil, "missing target directory", nil)
	}
	return nil
}

// pkgName returns the generated package name.
func (c Config) pkgName() string {
	return path.Base(c.Package)
}
