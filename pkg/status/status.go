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

package status

import (
	"context"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents what a rewrite did to a file
type FileStatus int

const (
	StatusUnchanged FileStatus = iota // No rule changed the content
	StatusUpdated                     // Content changed and was written back
	StatusFailed                      // Reading, rewriting or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return "unchanged"
	}
}

// 💾 FileManager handles the file system side of a rewrite
type FileManager interface {
	// ReadFile returns the full content of an existing UTF-8 text file
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// OverwriteFile replaces the content of an existing file in place
	OverwriteFile(ctx context.Context, path string, content []byte) error
}

var _ FileManager = (*Manager)(nil)

// 🔧 Manager implements FileManager on the local disk.
// It never creates, renames or deletes files: a missing path is an error.
type Manager struct{}

// 🏭 NewManager creates a new file manager
func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	if !utf8.Valid(content) {
		return nil, errors.Errorf("decoding file: content is not valid UTF-8")
	}

	zerolog.Ctx(ctx).Trace().Str("path", path).Int("size", len(content)).Msg("read file")
	return content, nil
}

func (m *Manager) OverwriteFile(ctx context.Context, path string, content []byte) error {
	// no O_CREATE: the target must already exist, and its mode is kept
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for writing: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("writing file: %w", err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", path).Int("size", len(content)).Msg("wrote file")
	return nil
}
