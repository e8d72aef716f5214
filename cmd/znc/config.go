package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

const defaultImgurBaseURL = "https://api.imgur.com"

// Environment variables consulted after the config file. The client id is a
// secret and usually lives in .env rather than in znc.yaml.
const (
	envClientID = "ZNC_IMGUR_CLIENT_ID"
	envDataDir  = "ZNC_DATA_DIR"
)

// fileConfig mirrors znc.yaml.
type fileConfig struct {
	LogLevel      string            `yaml:"log_level"`
	Annotation    bool              `yaml:"annotation"`
	GroupByColor  bool              `yaml:"group_by_color"`
	BatchSize     int               `yaml:"batch_size"`
	HeadingOffset int               `yaml:"heading_offset"`
	LanguageMap   map[string]string `yaml:"language_map"`
	DataDir       string            `yaml:"data_dir"`
	CachePath     string            `yaml:"cache_path"`
	Imgur         imgurConfig       `yaml:"imgur"`
}

type imgurConfig struct {
	BaseURL  string `yaml:"base_url"`
	ClientID string `yaml:"client_id"`
}

// settings is the effective CLI configuration after merging defaults, the
// config file, environment variables and flags, in that order.
type settings struct {
	logLevel      string
	annotation    bool
	groupByColor  bool
	batchSize     int
	headingOffset int
	languageMap   map[string]string
	dataDir       string
	cachePath     string
	imgurBaseURL  string
	imgurClientID string
}

func defaultSettings() settings {
	return settings{
		logLevel:     "info",
		batchSize:    notion.MaxBlocksPerAppend,
		imgurBaseURL: defaultImgurBaseURL,
	}
}

// loadSettings resolves the configuration for one command run. The default
// config file is optional; a path passed via --config must exist.
func loadSettings(cmd *cobra.Command) (settings, error) {
	var file fileConfig

	data, err := os.ReadFile(flagConfig)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return settings{}, fmt.Errorf("parse config %s: %w", flagConfig, err)
		}
	case os.IsNotExist(err) && !cmd.Flags().Changed("config"):
	default:
		return settings{}, fmt.Errorf("read config %s: %w", flagConfig, err)
	}

	// .env supplies secrets the config file should not carry. Variables
	// already present in the environment win over .env entries.
	_ = godotenv.Load()

	s := resolveSettings(file, os.Getenv)
	if flagLogLevel != "" {
		s.logLevel = flagLogLevel
	}

	return s, nil
}

// resolveSettings layers the config file and then the environment over the
// defaults.
func resolveSettings(file fileConfig, getenv func(string) string) settings {
	s := defaultSettings()
	s.apply(file)

	if clientID := getenv(envClientID); clientID != "" {
		s.imgurClientID = clientID
	}
	if dataDir := getenv(envDataDir); dataDir != "" {
		s.dataDir = dataDir
	}

	return s
}

func (s *settings) apply(file fileConfig) {
	if file.LogLevel != "" {
		s.logLevel = file.LogLevel
	}
	s.annotation = file.Annotation
	s.groupByColor = file.GroupByColor
	if file.BatchSize > 0 {
		s.batchSize = file.BatchSize
	}
	s.headingOffset = file.HeadingOffset
	if len(file.LanguageMap) > 0 {
		s.languageMap = file.LanguageMap
	}
	if file.DataDir != "" {
		s.dataDir = file.DataDir
	}
	if file.CachePath != "" {
		s.cachePath = file.CachePath
	}
	if file.Imgur.BaseURL != "" {
		s.imgurBaseURL = file.Imgur.BaseURL
	}
	if file.Imgur.ClientID != "" {
		s.imgurClientID = file.Imgur.ClientID
	}
}

// applyNoteFlags overlays the per-command conversion flags. Only flags the
// user actually passed override the file and environment values.
func (s *settings) applyNoteFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("annotation") {
		s.annotation = flagAnnotation
	}
	if flags.Changed("group-by-color") {
		s.groupByColor = flagGroupByColor
	}
	if flags.Changed("batch-size") {
		s.batchSize = flagBatchSize
	}
}
