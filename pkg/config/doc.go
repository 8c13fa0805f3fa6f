// Package config loads pipelog's configuration.
//
// Sources are layered, later ones winning:
//
//  1. the embedded defaults (embedded/defaults.yaml)
//  2. a user file: the --config path, or $XDG_CONFIG_HOME/pipelog/config.yaml
//     when present. Files ending in .toml are read as TOML, anything else
//     as YAML.
//  3. PIPELOG_* environment variables; the first underscore after the
//     prefix separates section and key (PIPELOG_HEADER_WIDTH -> header.width)
//  4. explicit overrides, typically command-line flags
package config
