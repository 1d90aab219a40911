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
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ReadFile(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string) string
		want        string
		errContains string
	}{
		{
			name: "utf8_file",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "EmailService.cs")
				require.NoError(t, os.WriteFile(path, []byte("var s = \"🗑️ Contact Deleted\";\n"), 0644))
				return path
			},
			want: "var s = \"🗑️ Contact Deleted\";\n",
		},
		{
			name: "empty_file",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "empty.tsx")
				require.NoError(t, os.WriteFile(path, nil, 0644))
				return path
			},
			want: "",
		},
		{
			name: "missing_file",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "missing.cs")
			},
			errContains: "opening file",
		},
		{
			name: "invalid_utf8",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "latin1.cs")
				require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0644))
				return path
			},
			errContains: "not valid UTF-8",
		},
		{
			name: "directory",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "Controllers")
				require.NoError(t, os.Mkdir(path, 0755))
				return path
			},
			errContains: "reading file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.TraceLevel).WithContext(context.Background())
			path := tt.setup(t, t.TempDir())

			got, err := NewManager().ReadFile(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestManager_OverwriteFile(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager()

	t.Run("replaces_content_and_keeps_mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "OptInForm.tsx")
		require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0600))

		require.NoError(t, mgr.OverwriteFile(ctx, path, []byte("short")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(got), "old content should be truncated")

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
		}
	})

	t.Run("does_not_create_missing_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.tsx")

		err := mgr.OverwriteFile(ctx, path, []byte("content"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening file for writing")

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "file should not have been created")
	})
}

func TestFileStatus_String(t *testing.T) {
	assert.Equal(t, "unchanged", StatusUnchanged.String())
	assert.Equal(t, "updated", StatusUpdated.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
