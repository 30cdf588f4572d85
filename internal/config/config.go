package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/dxfclean/internal/dxf"
)

// FileName is the config file looked up in the working directory.
const FileName = ".dxfclean.yaml"

// Defaults.
const (
	DefaultOutputDir  = "Output"
	DefaultSuffix     = "_cleaned.dxf"
	DefaultExtension  = ".dxf"
	DefaultHandleBase = "32"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
)

type Config struct {
	EntityTypes    []string `yaml:"entity-types"`
	HandleBase     string   `yaml:"handle-base"`
	OutputDir      string   `yaml:"output-dir"`
	Suffix         string   `yaml:"suffix"`
	Extension      string   `yaml:"extension"`
	TemplateDir    string   `yaml:"template-dir"`
	HeaderTemplate string   `yaml:"header-template"`
	FooterTemplate string   `yaml:"footer-template"`
	Report         bool     `yaml:"report"`
	MetricsFile    string   `yaml:"metrics-file"`
	LogLevel       string   `yaml:"log-level"`
	LogFormat      string   `yaml:"log-format"`
	LogFile        string   `yaml:"log-file"`
}

// Default returns a validated config with every default applied.
func Default() *Config {
	cfg := &Config{}
	// Validate cannot fail on an empty config.
	_ = Validate(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config. Relative
// template paths in the file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.TemplateDir != "" && !filepath.IsAbs(cfg.TemplateDir) {
		cfg.TemplateDir = filepath.Join(filepath.Dir(path), cfg.TemplateDir)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads path when given. Otherwise it loads FileName from dir if
// present and falls back to Default.
func Resolve(path, dir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(candidate)
}

// EntityKinds returns the entity allow-list.
func (c *Config) EntityKinds() dxf.EntityKinds {
	return dxf.NewEntityKinds(c.EntityTypes...)
}

// HandleBaseValue returns the parsed handle base. Call only on a
// validated config.
func (c *Config) HandleBaseValue() uint64 {
	v, _ := strconv.ParseUint(c.HandleBase, 16, 64)
	return v
}

// TemplatePaths returns the header and footer template paths, resolving
// relative names against TemplateDir.
func (c *Config) TemplatePaths() (header, footer string) {
	return c.resolveTemplate(c.HeaderTemplate), c.resolveTemplate(c.FooterTemplate)
}

func (c *Config) resolveTemplate(name string) string {
	if filepath.IsAbs(name) || c.TemplateDir == "" {
		return name
	}
	return filepath.Join(c.TemplateDir, name)
}

// defaultTemplateDir is the directory holding the running executable, where
// the templates ship next to the binary.
func defaultTemplateDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
