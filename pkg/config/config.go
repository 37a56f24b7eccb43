// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultRoots is the built-in fallback directory list, used when neither
// the command line nor a config file names any roots.
var DefaultRoots = []string{
	"src/lib/storage",
	"src/lib/deployment",
	"src/lib/monitoring",
	"src/lib/cache",
}

// DefaultPattern selects candidate files relative to each root.
const DefaultPattern = "**/*.ts"

// 📚 Config represents the complete configuration
type Config struct {
	Roots   []string // Root directories to scan
	Pattern string   // Glob pattern selecting candidate files, relative to each root
}

// 🏭 Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Roots:   append([]string(nil), DefaultRoots...),
		Pattern: DefaultPattern,
	}
}

// 🔍 Validate checks the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if len(cfg.Roots) == 0 {
		cfg.Roots = append([]string(nil), DefaultRoots...)
	}
	for i, root := range cfg.Roots {
		if root == "" {
			return errors.Errorf("roots[%d] is empty", i)
		}
		cfg.Roots[i] = filepath.Clean(root)
	}
	return nil
}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📝 Load reads and parses the config file at path, picking the parser by
// file extension, and validates the result.
func Load(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	parser := GetParser(path)
	if parser == nil {
		return nil, errors.Errorf("no parser for config file %q", path)
	}

	cfg, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
