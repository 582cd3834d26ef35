// Config loading for the kotoba CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir      = "data_dir"
	cfgKeyUsername     = "username"
	cfgKeyQuestionType = "question_type"
	cfgKeyAnswerType   = "answer_type"
	cfgKeyOptionCount  = "option_count"
	cfgKeyLogLevel     = "log_level"
)

// Defaults. The question/answer pair mirrors the classic drill: show the
// translation, pick the romaji.
const (
	defaultQuestionType = "translation"
	defaultAnswerType   = "romaji"
	defaultOptionCount  = 4
	defaultLogLevel     = "warn"
)

// appConfig is the typed view of config.yaml plus defaults.
type appConfig struct {
	DataDir      string
	Username     string
	QuestionType string
	AnswerType   string
	OptionCount  int
	LogLevel     string
}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Kotoba configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Shown in quiz greetings
# username:

# Quiz word types: translation, kana, or romaji
question_type: translation
answer_type: romaji

# Options per quiz question (correct answer plus distractors)
option_count: 4

# Log level: debug, info, warn, error
log_level: warn
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*appConfig, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyQuestionType, defaultQuestionType)
	v.SetDefault(cfgKeyAnswerType, defaultAnswerType)
	v.SetDefault(cfgKeyOptionCount, defaultOptionCount)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Missing config.yaml is not an error; defaults apply.
	}

	return &appConfig{
		DataDir:      v.GetString(cfgKeyDataDir),
		Username:     v.GetString(cfgKeyUsername),
		QuestionType: v.GetString(cfgKeyQuestionType),
		AnswerType:   v.GetString(cfgKeyAnswerType),
		OptionCount:  v.GetInt(cfgKeyOptionCount),
		LogLevel:     v.GetString(cfgKeyLogLevel),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
