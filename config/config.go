package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider names accepted for both the extraction and the speech step.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds everything a conversion run needs. API keys come from the
// environment only, never from the settings file.
type Config struct {
	GeminiAPIKey string `mapstructure:"-"`
	OpenAIAPIKey string `mapstructure:"-"`

	Extraction ExtractionConfig `mapstructure:"extraction"`
	Speech     SpeechConfig     `mapstructure:"speech"`
	Vertex     VertexConfig     `mapstructure:"vertex"`
}

type ExtractionConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	Prompt   string `mapstructure:"prompt"`
}

type SpeechConfig struct {
	Provider   string  `mapstructure:"provider"`
	Model      string  `mapstructure:"model"`
	Voice      string  `mapstructure:"voice"`
	Speed      float64 `mapstructure:"speed"`
	ChunkChars int     `mapstructure:"chunk_chars"`
}

// VertexConfig switches the Gemini calls from the Developer API to a Vertex
// AI project. Active when a credentials path is set.
type VertexConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	Location        string `mapstructure:"location"`
	CredentialsPath string `mapstructure:"credentials_path"`
}

// Options controls where Load looks for its inputs.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load merges, in increasing precedence: built-in defaults, the optional
// YAML settings file, and PAPER2AUDIO_* environment variables. A .env file
// is loaded into the environment first when present.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("paper2audio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("PAPER2AUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("extraction.provider", ProviderGemini)
	v.SetDefault("extraction.model", "")
	v.SetDefault("extraction.prompt", "")

	v.SetDefault("speech.provider", ProviderGemini)
	v.SetDefault("speech.model", "")
	v.SetDefault("speech.voice", "")
	v.SetDefault("speech.speed", 1.0)
	v.SetDefault("speech.chunk_chars", 10000)

	v.SetDefault("vertex.project_id", "")
	v.SetDefault("vertex.location", "us-central1")
	v.SetDefault("vertex.credentials_path", "")
}

func (c *Config) Validate() error {
	if err := validProvider(c.Extraction.Provider); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	if err := validProvider(c.Speech.Provider); err != nil {
		return fmt.Errorf("speech: %w", err)
	}
	if c.Speech.ChunkChars <= 0 {
		return fmt.Errorf("speech: chunk_chars must be positive, got %d", c.Speech.ChunkChars)
	}
	if c.Vertex.CredentialsPath != "" && c.Vertex.ProjectID == "" {
		return fmt.Errorf("vertex: project_id is required when credentials_path is set")
	}
	return nil
}

func validProvider(p string) error {
	switch p {
	case ProviderGemini, ProviderOpenAI:
		return nil
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", p, ProviderGemini, ProviderOpenAI)
	}
}
