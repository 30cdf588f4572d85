package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jorge-barreto/dxfclean/internal/templates"
)

var entityTypeRe = regexp.MustCompile(`^[A-Z0-9_]+$`)

// structural markers can never be captured as entities
var reservedKinds = map[string]bool{
	"SECTION": true, "ENDSEC": true,
	"TABLE": true, "ENDTAB": true,
	"EOF": true,
}

var validLogFormats = map[string]bool{"console": true, "json": true}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if len(cfg.EntityTypes) == 0 {
		cfg.EntityTypes = []string{"LINE", "CIRCLE", "ARC"}
	}
	seen := make(map[string]bool)
	kinds := make([]string, 0, len(cfg.EntityTypes))
	for _, raw := range cfg.EntityTypes {
		kind := strings.ToUpper(strings.TrimSpace(raw))
		if kind == "" {
			return fmt.Errorf("config: 'entity-types' entries must be non-empty")
		}
		if !entityTypeRe.MatchString(kind) {
			return fmt.Errorf("config: entity-types: %q is not a valid entity type", raw)
		}
		if reservedKinds[kind] {
			return fmt.Errorf("config: entity-types: %q is a structural marker, not an entity", kind)
		}
		if seen[kind] {
			return fmt.Errorf("config: entity-types: duplicate entity type %q", kind)
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	cfg.EntityTypes = kinds

	if cfg.HandleBase == "" {
		cfg.HandleBase = DefaultHandleBase
	}
	cfg.HandleBase = strings.TrimPrefix(strings.TrimPrefix(cfg.HandleBase, "0x"), "0X")
	v, err := strconv.ParseUint(cfg.HandleBase, 16, 64)
	if err != nil {
		return fmt.Errorf("config: 'handle-base' %q is not a hexadecimal handle", cfg.HandleBase)
	}
	if v == 0 {
		return fmt.Errorf("config: 'handle-base' must be greater than zero")
	}
	cfg.HandleBase = strings.ToUpper(cfg.HandleBase)

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if strings.ContainsAny(cfg.Suffix, `/\`) {
		return fmt.Errorf("config: 'suffix' %q must not contain a path separator", cfg.Suffix)
	}
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}

	if cfg.HeaderTemplate == "" {
		cfg.HeaderTemplate = templates.HeaderFile
	}
	if cfg.FooterTemplate == "" {
		cfg.FooterTemplate = templates.FooterFile
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = defaultTemplateDir()
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("config: unknown log-level %q (want debug, info, warn or error)", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if !validLogFormats[cfg.LogFormat] {
		return fmt.Errorf("config: unknown log-format %q (want console or json)", cfg.LogFormat)
	}

	return nil
}
