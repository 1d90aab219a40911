package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/campaignrefs/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	buf := &bytes.Buffer{}
	cmd := newRootCmd(buf)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd(t *testing.T) {
	root := t.TempDir()
	backend := filepath.Join(root, "backend")
	frontend := filepath.Join(root, "frontend")

	writeFile(t, filepath.Join(backend, "HooverCanvassingApi/Models/Voter.cs"),
		"        StrongNo        // Strong no - Definitely not voting for Tanveer\n")
	writeFile(t, filepath.Join(frontend, "src/components/ContactModal.tsx"),
		`label="Leaning Yes - May vote for Tanveer"`+"\n")

	out, err := execute(t, "--backend-dir", backend, "--frontend-dir", frontend)
	require.NoError(t, err, "partial failures should not fail the command")

	voterPath := filepath.Join(backend, "HooverCanvassingApi", "Models", "Voter.cs")
	modalPath := filepath.Join(frontend, "src", "components", "ContactModal.tsx")
	missing := filepath.Join(backend, "HooverCanvassingApi", "Services", "EmailService.cs")

	assert.Contains(t, out, "Updated: "+voterPath+"\n")
	assert.Contains(t, out, "Updated: "+modalPath+"\n")
	assert.Contains(t, out, "Error updating "+missing+": ")
	assert.Contains(t, out, "\nTotal files updated: 2\n")
	assert.True(t, strings.HasSuffix(out, `
NOTE: Frontend files will need environment variables configured:
- REACT_APP_CANDIDATE_NAME
- REACT_APP_CAMPAIGN_NAME
- REACT_APP_CAMPAIGN_TITLE
- REACT_APP_CONSENT_TEXT
`), "output should end with the note block, got:\n%s", out)

	voter, err := os.ReadFile(voterPath)
	require.NoError(t, err)
	assert.Equal(t, "        StrongNo        // Strong no - Definitely not voting for the candidate\n", string(voter))

	// a second run finds nothing left to change
	out, err = execute(t, "--backend-dir", backend, "--frontend-dir", frontend)
	require.NoError(t, err)
	assert.NotContains(t, out, "Updated: ")
	assert.Contains(t, out, "Total files updated: 0")
}

func TestRootCmd_LayoutFile(t *testing.T) {
	root := t.TempDir()
	backend := filepath.Join(root, "api")

	writeFile(t, filepath.Join(backend, "HooverCanvassingApi/Controllers/AdminController.cs"),
		"// Paid for by Tanveer for Hoover\n")

	layoutPath := filepath.Join(root, "layout.yaml")
	writeFile(t, layoutPath, "backend_dir: "+backend+"\nfrontend_dir: "+filepath.Join(root, "ui")+"\n")

	out, err := execute(t, "--config", layoutPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated: "+filepath.Join(backend, "HooverCanvassingApi", "Controllers", "AdminController.cs"))
	assert.Contains(t, out, "Total files updated: 1")
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "positional_args_rejected",
			args:        []string{"extra"},
			errContains: "unknown command",
		},
		{
			name:        "missing_layout_file",
			args:        []string{"--config", filepath.Join(t.TempDir(), "missing.hcl")},
			errContains: "loading layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.NotContains(t, out, "Total files updated")
		})
	}
}

func TestResolveLayout(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		layout, err := resolveLayout(context.Background(), &rootOpts{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(config.DefaultBackendDir), layout.BackendDir)
		assert.Equal(t, filepath.Clean(config.DefaultFrontendDir), layout.FrontendDir)
	})

	t.Run("flags_override", func(t *testing.T) {
		layout, err := resolveLayout(context.Background(), &rootOpts{backendDir: "/srv/api/"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/srv/api"), layout.BackendDir)
		assert.Equal(t, filepath.Clean(config.DefaultFrontendDir), layout.FrontendDir)
	})

	t.Run("relative_made_absolute", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		layout, err := resolveLayout(context.Background(), &rootOpts{frontendDir: "ui"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "ui"), layout.FrontendDir)
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "campaignrefs version info:")
	assert.Contains(t, out, "Go:")
}
