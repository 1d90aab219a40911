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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Built-in project roots, used when nothing overrides them.
const (
	DefaultBackendDir  = "/Users/maqbool.patel/Tanveer4Hoover/hoover-canvassing-app/backend"
	DefaultFrontendDir = "/Users/maqbool.patel/Tanveer4Hoover/hoover-canvassing-app/frontend"
)

// 🔌 Parser is the interface for layout file parsers
type Parser interface {
	// 📝 Parse parses a layout from bytes. Fields absent from the file are left empty.
	Parse(ctx context.Context, data []byte) (*Layout, error)

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

// 📚 Layout locates the two projects whose sources get rewritten
type Layout struct {
	BackendDir  string `json:"backend_dir,omitempty" yaml:"backend_dir,omitempty" hcl:"backend_dir,optional"`   // Root of the API project
	FrontendDir string `json:"frontend_dir,omitempty" yaml:"frontend_dir,omitempty" hcl:"frontend_dir,optional"` // Root of the UI project
}

// 🏭 DefaultLayout returns the built-in project roots
func DefaultLayout() *Layout {
	return &Layout{
		BackendDir:  DefaultBackendDir,
		FrontendDir: DefaultFrontendDir,
	}
}

// 🎯 Load reads a layout file and merges it over the defaults
func Load(ctx context.Context, path string) (*Layout, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading layout")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading layout file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	parsed, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing layout: %w", err)
	}

	layout := DefaultLayout().Merge(parsed)
	if err := layout.Validate(); err != nil {
		return nil, errors.Errorf("validating layout: %w", err)
	}

	return layout, nil
}

// 🔄 Merge returns a copy of cfg with every non-empty field of other applied on top
func (cfg *Layout) Merge(other *Layout) *Layout {
	out := *cfg
	if other == nil {
		return &out
	}
	if other.BackendDir != "" {
		out.BackendDir = other.BackendDir
	}
	if other.FrontendDir != "" {
		out.FrontendDir = other.FrontendDir
	}
	return &out
}

// 🔍 Validate checks if the layout is valid
func (cfg *Layout) Validate() error {
	if cfg.BackendDir == "" {
		return errors.Errorf("backend_dir is required")
	}
	if cfg.FrontendDir == "" {
		return errors.Errorf("frontend_dir is required")
	}

	cfg.BackendDir = filepath.Clean(cfg.BackendDir)
	cfg.FrontendDir = filepath.Clean(cfg.FrontendDir)

	return nil
}

// 📝 String returns a string representation of the layout
func (cfg *Layout) String() string {
	return fmt.Sprintf("backend=%s frontend=%s", cfg.BackendDir, cfg.FrontendDir)
}
