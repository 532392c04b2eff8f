package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/saidan/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core    Core    `yaml:"core"`
	History History `yaml:"history"`
}

type Core struct {
	Shred ShredConfig `yaml:"shred"`

	// ProtectedPaths are refused as shred targets in addition to the
	// built-in system paths
	ProtectedPaths []string `yaml:"protected_paths"`
}

type ShredConfig struct {
	// Confirm prompts before any destruction
	Confirm bool `yaml:"confirm"`

	// Verbose prints a line per destroyed target
	Verbose bool `yaml:"verbose"`
}

// History controls which trashed items are offered for shredding
type History struct {
	Include IncludeConfig `yaml:"include"`
	Exclude ExcludeConfig `yaml:"exclude"`
}

type IncludeConfig struct {
	Period int `yaml:"within_days"`
}

type ExcludeConfig struct {
	Files    []string   `yaml:"files"`
	Patterns []string   `yaml:"patterns"`
	Globs    []string   `yaml:"globs"`
	Size     SizeConfig `yaml:"size"`
}

type SizeConfig struct {
	Min string `yaml:"min" validate:"validSize"`
	Max string `yaml:"max" validate:"validSize"`
}

type configError struct {
	configPath string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfigContents() string {
	defaultConfig := NewDefaultConfig()
	content, _ := yaml.Marshal(defaultConfig)
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't read the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.SAIDAN_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		newConfigFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer newConfigFile.Close()

		if _, err := newConfigFile.WriteString(p.getDefaultConfigContents()); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

// Parse loads the config at path, creating a default one on first run.
// An empty path falls back to SAIDAN_CONFIG_PATH.
func Parse(path string) (Config, error) {
	p := parser{}

	if path == "" {
		path = env.SAIDAN_CONFIG_PATH
	}

	if err := p.createConfigFile(path); err != nil {
		return Config{}, configError{configPath: path, parser: p, err: err}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, configError{configPath: path, parser: p, err: err}
	}

	// Unmarshal over the defaults so omitted keys keep their default values
	cfg := *NewDefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, configError{configPath: path, parser: p, err: err}
	}

	if err := cfg.validateConfig(); err != nil {
		return Config{}, configError{configPath: path, parser: p, err: err}
	}

	return cfg, nil
}

func (c *Config) validateConfig() error {
	validate = validator.New()
	if err := validate.RegisterValidation("validSize", validSize); err != nil {
		return fmt.Errorf("failed to register size validation: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
