package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TADA_DATA_DIR", "TADA_BACKEND", "TADA_THEME", "TADA_LOG_LEVEL", "TADA_LOG_FILE", "TADA_ID_POLICY"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_DefaultsWhenNothingExists(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, store.BackendJSON, cfg.Backend)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, IDPolicyLen, cfg.IDPolicy)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("HOME_FOR_TEST", dir)
	path := writeFile(t, dir, DefaultFile, `
data_dir: ${HOME_FOR_TEST}/data
backend: sqlite
theme: neon
id_policy: monotonic
`)

	cfg, err := Load(path, filepath.Join(dir, "none.env"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
	assert.Equal(t, store.BackendSQLite, cfg.Backend)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")

	policy, err := cfg.StateIDPolicy()
	require.NoError(t, err)
	assert.Equal(t, state.IDMonotonic, policy)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, DefaultFile, "backend: sqlite\ntheme: neon\nlog_level: warn\n")
	envFile := writeFile(t, dir, ".env", "TADA_THEME=mono\nTADA_LOG_LEVEL=error\n")
	t.Setenv("TADA_LOG_LEVEL", "debug")

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, store.BackendSQLite, cfg.Backend, "yaml over defaults")
	assert.Equal(t, "mono", cfg.Theme, ".env over yaml")
	assert.Equal(t, "debug", cfg.LogLevel, "process env over .env")
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, DefaultFile, "backend: [unterminated\n")

	_, err := Load(path, filepath.Join(dir, "none.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal config")
}

func TestLoad_InvalidValuesCaughtByValidate(t *testing.T) {
	cases := map[string]string{
		"TADA_BACKEND":   "redis",
		"TADA_ID_POLICY": "random",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			cfg, err := Load("", filepath.Join(t.TempDir(), "none.env"))
			require.NoError(t, err)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), v)
		})
	}
}

func TestLoad_LaterOverrideReplacesBadEnvValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("TADA_BACKEND", "bogus")
	t.Setenv("TADA_ID_POLICY", "random")

	cfg, err := Load("", filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, "bogus", cfg.Backend)

	cfg.Backend = store.BackendJSON
	cfg.IDPolicy = IDPolicyMono
	assert.NoError(t, cfg.Validate())
}

func TestLogPath(t *testing.T) {
	cfg := Config{DataDir: "/data"}
	assert.Equal(t, filepath.Join("/data", LogFileName), cfg.LogPath())

	cfg.LogFile = "/tmp/custom.log"
	assert.Equal(t, "/tmp/custom.log", cfg.LogPath())
}

func TestValidate_MemoryNeedsNoDataDir(t *testing.T) {
	cfg := Config{Backend: store.BackendMemory}
	assert.NoError(t, cfg.Validate())

	cfg.Backend = store.BackendJSON
	assert.Error(t, cfg.Validate())
}
