package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads flag values from a
// YAML configuration file.
//
// It is installed with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// Flag names with hyphens (e.g., "log-level") use underscores in the config
// file (e.g., "log_level"):
//
//	log_level: debug
//	log_format: text
//	log_pretty: true
//
// Command-line flags override config file values. An unreadable or malformed
// file yields an empty configuration rather than an error so a stale config
// never blocks the CLI.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return yamlConfig{}, nil
	}

	var values map[string]any

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return yamlConfig{}, nil
	}

	return yamlConfig(values), nil
}

// yamlConfig implements [kong.Resolver] over a flat map of flag values.
type yamlConfig map[string]any

// Resolve returns the config value for a flag, or nil if unset.
func (c yamlConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	key := strings.ReplaceAll(flag.Name, "-", "_")

	value, ok := c[key]
	if !ok {
		return nil, nil
	}

	return value, nil
}

// Validate implements [kong.Resolver].
func (yamlConfig) Validate(*kong.Application) error { return nil }
