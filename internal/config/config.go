package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "QUIZBOX"

// UI modes accepted by the play command.
const (
	UIModeAuto  = "auto"
	UIModeTUI   = "tui"
	UIModePlain = "plain"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	QuestionsFile string `mapstructure:"questions_file"` // question set path; empty means the built-in set
	Attempts      int    `mapstructure:"attempts"`       // answers allowed per question
	UI            UI     `mapstructure:"ui"`
	Audio         Audio  `mapstructure:"audio"`
	Log           Log    `mapstructure:"log"`
}

// UI configures the presentation layer.
type UI struct {
	Mode    string `mapstructure:"mode"`     // auto, tui or plain
	NoColor bool   `mapstructure:"no_color"` // disable ANSI styling
}

// Audio locates the lobby music asset.
type Audio struct {
	Dir  string `mapstructure:"dir"`  // directory searched for the asset
	Name string `mapstructure:"name"` // asset name, with or without extension
}

// Log configures zerolog output.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or pretty
	File   string `mapstructure:"file"`   // empty keeps logs off the terminal UI
}

// Load reads configuration from an optional config file, a .env file and
// QUIZBOX_* environment variables. An explicit path must exist; without one,
// quizbox.yaml is looked up in ./config and the working directory.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("quizbox")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetDefault("questions_file", "")
	v.SetDefault("attempts", 3)
	v.SetDefault("ui.mode", UIModeAuto)
	v.SetDefault("ui.no_color", false)
	v.SetDefault("audio.dir", "assets")
	v.SetDefault("audio.name", "Voicy_Kahoot Lobby Music")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NormalizeUIMode lower-cases and trims a UI mode; empty means auto.
func NormalizeUIMode(mode string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	switch normalized {
	case "":
		return UIModeAuto, nil
	case UIModeAuto, UIModeTUI, UIModePlain:
		return normalized, nil
	default:
		return "", fmt.Errorf("ui.mode %q is invalid (expected auto|tui|plain)", mode)
	}
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	var problems []string
	if c.Attempts < 1 {
		problems = append(problems, fmt.Sprintf("attempts must be at least 1, got %d", c.Attempts))
	}
	if mode, err := NormalizeUIMode(c.UI.Mode); err != nil {
		problems = append(problems, err.Error())
	} else {
		c.UI.Mode = mode
	}
	switch c.Log.Format {
	case "json", "pretty":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is invalid (expected json|pretty)", c.Log.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
