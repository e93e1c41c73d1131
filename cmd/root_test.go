package cmd

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"paper2audio/config"
)

func TestResolvePromptPrecedence(t *testing.T) {
	cfg := &config.Config{
		Extraction: config.ExtractionConfig{Prompt: "configured prompt"},
	}

	// flag wins over the settings file
	require.Equal(t, "flag prompt", resolvePrompt("flag prompt", cfg))
	require.Equal(t, "configured prompt", resolvePrompt("", cfg))

	// nothing set selects the extractor default
	cfg.Extraction.Prompt = ""
	require.Empty(t, resolvePrompt("", cfg))
}

func TestNewLoggerVerboseLevel(t *testing.T) {
	orig := verbose
	defer func() { verbose = orig }()

	verbose = false
	require.Equal(t, zerolog.InfoLevel, newLogger().GetLevel())

	verbose = true
	require.Equal(t, zerolog.DebugLevel, newLogger().GetLevel())
}
