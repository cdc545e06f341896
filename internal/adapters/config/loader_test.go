package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/config"
	"go.trai.ch/cbuild/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_MissingOptionalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)

	cfg, err := config.NewLoader().Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_MissingRequiredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, err := config.NewLoader().Load(path, true)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_FullFile(t *testing.T) {
	path := writeConfig(t, `
root: src
extension: .cpp
ignore: ["build", "third_party"]
compiler: clang++
flags: ["-g", "-Wall", "-std=c++17"]
binary: app
state: .state/records.json
`)

	cfg, err := config.NewLoader().Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		Discovery: domain.DiscoveryConfig{
			Root:      "src",
			Extension: ".cpp",
			Ignore:    []string{"build", "third_party"},
		},
		Invocation: domain.InvocationConfig{
			Compiler: "clang++",
			Flags:    []string{"-g", "-Wall", "-std=c++17"},
			Binary:   "app",
		},
		StatePath: ".state/records.json",
	}, cfg)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "compiler: clang\n")

	cfg, err := config.NewLoader().Load(path, false)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Invocation.Compiler = "clang"
	assert.Equal(t, want, cfg)
}

func TestLoader_Load_EmptyFlagsList(t *testing.T) {
	path := writeConfig(t, "flags: []\n")

	cfg, err := config.NewLoader().Load(path, false)
	require.NoError(t, err)
	assert.Empty(t, cfg.Invocation.Flags)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := config.NewLoader().Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_BlankValuesLeftForOverrides(t *testing.T) {
	path := writeConfig(t, "extension: \"\"\ncompiler: \"\"\n")

	cfg, err := config.NewLoader().Load(path, true)
	require.NoError(t, err)
	assert.Empty(t, cfg.Discovery.Extension)
	assert.Empty(t, cfg.Invocation.Compiler)
	assert.Error(t, cfg.Validate())
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "root: [unclosed\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown key",
			content: "compilr: gcc\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "wrong type",
			content: "flags: -g\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := config.NewLoader().Load(path, false)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
