// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf derives the format from a file extension (.yaml, .yml, .toml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", configErrorf("FormatOf", fmt.Errorf("%w: %q", ErrUnknownFormat, path))
}

// Load reads and validates a configuration file. Keys absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, configErrorf("Load", err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format over Default() and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return Config{}, configErrorf("Parse(yaml)", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, configErrorf("Parse(toml)", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, configErrorf("Parse(toml)", fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	default:
		return Config{}, configErrorf("Parse", fmt.Errorf("%w: %q", ErrUnknownFormat, format))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
