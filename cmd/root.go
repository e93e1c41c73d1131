package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paper2audio/auth"
	"paper2audio/config"
	"paper2audio/extract"
	"paper2audio/gemini"
	"paper2audio/tts"
)

var (
	configPath string
	envFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "paper2audio",
	Short: "Convert papers to narrated audio",
	Long: `A CLI tool that turns a PDF paper into a spoken WAV file.

Text extraction and speech synthesis are both delegated to the Gemini API;
OpenAI can stand in for either step. Requires GEMINI_API_KEY in the
environment (and OPENAI_API_KEY when an openai provider is selected).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML settings file (default ./paper2audio.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to .env file (default ./.env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(speakCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Options{ConfigFile: configPath, EnvFile: envFile})
	if err != nil {
		return nil, fmt.Errorf("Failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolvePrompt picks the extraction prompt: the command line flag wins over
// the configured prompt. An empty result leaves the extractor on its
// built-in prompt.
func resolvePrompt(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Extraction.Prompt
}

// newGeminiClient picks the Developer API or Vertex AI based on whether
// service account credentials are configured.
func newGeminiClient(ctx context.Context, cfg *config.Config) (*gemini.Client, error) {
	var authenticator auth.Authenticator
	var endpoint string

	if cfg.Vertex.CredentialsPath != "" {
		sa, err := auth.NewServiceAccountAuthenticator(auth.Config{
			CredentialsPath: cfg.Vertex.CredentialsPath,
		})
		if err != nil {
			return nil, fmt.Errorf("Failed to instantiate authenticator: %w", err)
		}
		authenticator = sa
		endpoint = gemini.VertexEndpoint(cfg.Vertex.ProjectID, cfg.Vertex.Location)
	} else {
		key, err := auth.NewAPIKeyAuthenticator(cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("Failed to instantiate authenticator: %w", err)
		}
		authenticator = key
	}

	client, err := authenticator.GetHTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to authenticate: %w", err)
	}

	return gemini.NewClient(client, endpoint), nil
}

func newExtractor(ctx context.Context, cfg *config.Config, log zerolog.Logger) (extract.Extractor, error) {
	log.Debug().
		Str("provider", cfg.Extraction.Provider).
		Str("model", cfg.Extraction.Model).
		Msg("configuring extractor")

	switch cfg.Extraction.Provider {
	case config.ProviderGemini:
		client, err := newGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return extract.NewGeminiExtractor(client, cfg.Extraction.Model, log), nil
	case config.ProviderOpenAI:
		return extract.NewOpenAIExtractor(cfg.OpenAIAPIKey, extract.OpenAIOptions{Model: cfg.Extraction.Model}, log)
	default:
		return nil, fmt.Errorf("Unknown extraction provider: %s", cfg.Extraction.Provider)
	}
}

func newSynthesizer(ctx context.Context, cfg *config.Config, log zerolog.Logger) (tts.Synthesizer, error) {
	log.Debug().
		Str("provider", cfg.Speech.Provider).
		Str("model", cfg.Speech.Model).
		Str("voice", cfg.Speech.Voice).
		Msg("configuring synthesizer")

	switch cfg.Speech.Provider {
	case config.ProviderGemini:
		client, err := newGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return tts.NewGeminiSynthesizer(client, tts.GeminiOptions{
			Model:      cfg.Speech.Model,
			Voice:      cfg.Speech.Voice,
			ChunkChars: cfg.Speech.ChunkChars,
		}, log), nil
	case config.ProviderOpenAI:
		return tts.NewOpenAISynthesizer(cfg.OpenAIAPIKey, tts.OpenAIOptions{
			Model:      cfg.Speech.Model,
			Voice:      cfg.Speech.Voice,
			Speed:      cfg.Speech.Speed,
			ChunkChars: cfg.Speech.ChunkChars,
		}, log)
	default:
		return nil, fmt.Errorf("Unknown speech provider: %s", cfg.Speech.Provider)
	}
}
