package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// setConfigPath points the --config flag at path for one test.
func setConfigPath(t *testing.T, path string) {
	t.Helper()
	previous := flagConfig
	flagConfig = path
	t.Cleanup(func() { flagConfig = previous })
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envClientID, "")
	t.Setenv(envDataDir, "")
}

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()

	assert.Equal(t, "info", s.logLevel)
	assert.Equal(t, notion.MaxBlocksPerAppend, s.batchSize)
	assert.Equal(t, "https://api.imgur.com", s.imgurBaseURL)
	assert.False(t, s.annotation)
	assert.False(t, s.groupByColor)
	assert.Empty(t, s.dataDir)
	assert.Empty(t, s.imgurClientID)
}

func TestApplyEmptyFileKeepsDefaults(t *testing.T) {
	s := defaultSettings()
	s.apply(fileConfig{})

	assert.Equal(t, defaultSettings(), s)
}

func TestLoadSettingsFromFile(t *testing.T) {
	content := `log_level: debug
annotation: true
group_by_color: true
batch_size: 25
heading_offset: 1
language_map:
  golang: go
data_dir: /library
cache_path: uploads.db
imgur:
  base_url: https://imgur.example
  client_id: yaml-client
`
	path := filepath.Join(t.TempDir(), "znc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	setConfigPath(t, path)
	clearEnv(t)

	s, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)

	assert.Equal(t, "debug", s.logLevel)
	assert.True(t, s.annotation)
	assert.True(t, s.groupByColor)
	assert.Equal(t, 25, s.batchSize)
	assert.Equal(t, 1, s.headingOffset)
	assert.Equal(t, map[string]string{"golang": "go"}, s.languageMap)
	assert.Equal(t, "/library", s.dataDir)
	assert.Equal(t, "uploads.db", s.cachePath)
	assert.Equal(t, "https://imgur.example", s.imgurBaseURL)
	assert.Equal(t, "yaml-client", s.imgurClientID)
}

func TestLoadSettingsMissingDefaultConfig(t *testing.T) {
	setConfigPath(t, filepath.Join(t.TempDir(), "absent.yaml"))
	clearEnv(t)

	s, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)
}

func TestLoadSettingsMissingExplicitConfig(t *testing.T) {
	setConfigPath(t, filepath.Join(t.TempDir(), "absent.yaml"))
	clearEnv(t)

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "")
	require.NoError(t, cmd.Flags().Set("config", flagConfig))

	_, err := loadSettings(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadSettingsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "znc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("annotation: [broken"), 0o644))
	setConfigPath(t, path)
	clearEnv(t)

	_, err := loadSettings(&cobra.Command{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	content := `data_dir: /from/file
imgur:
  client_id: file-client
`
	path := filepath.Join(t.TempDir(), "znc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	setConfigPath(t, path)
	t.Setenv(envClientID, "env-client")
	t.Setenv(envDataDir, "/from/env")

	s, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)

	assert.Equal(t, "env-client", s.imgurClientID)
	assert.Equal(t, "/from/env", s.dataDir)
}

func TestLoadSettingsLogLevelFlagWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "znc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))
	setConfigPath(t, path)
	clearEnv(t)

	previous := flagLogLevel
	flagLogLevel = "warn"
	t.Cleanup(func() { flagLogLevel = previous })

	s, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)
	assert.Equal(t, "warn", s.logLevel)
}

func TestResolveSettingsEmptyEnvKeepsFile(t *testing.T) {
	file := fileConfig{DataDir: "/from/file"}
	file.Imgur.ClientID = "file-client"

	s := resolveSettings(file, func(string) string { return "" })

	assert.Equal(t, "/from/file", s.dataDir)
	assert.Equal(t, "file-client", s.imgurClientID)
}

func TestApplyNoteFlags(t *testing.T) {
	cmd := &cobra.Command{}
	noteFlags(cmd)
	cmd.Flags().IntVar(&flagBatchSize, "batch-size", notion.MaxBlocksPerAppend, "")
	require.NoError(t, cmd.Flags().Set("annotation", "true"))
	require.NoError(t, cmd.Flags().Set("batch-size", "10"))
	t.Cleanup(func() {
		flagAnnotation = false
		flagGroupByColor = false
		flagBatchSize = notion.MaxBlocksPerAppend
	})

	s := defaultSettings()
	s.groupByColor = true
	s.applyNoteFlags(cmd)

	assert.True(t, s.annotation)
	assert.True(t, s.groupByColor, "flags not passed must not override file values")
	assert.Equal(t, 10, s.batchSize)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"", "info", "debug", "warn", "error", "WARN"} {
		log, err := newLogger(level)
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, log)
	}
}

func TestNewLoggerInvalid(t *testing.T) {
	_, err := newLogger("verbose")
	require.Error(t, err)
	assert.Equal(t, `unknown log level "verbose" (allowed: debug, info, warn, error)`, err.Error())
}
