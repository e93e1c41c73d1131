package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"paper2audio/pipeline"
	"paper2audio/storage"
)

var (
	extractOut      string
	extractPrompt   string
	extractProvider string
)

var extractCmd = &cobra.Command{
	Use:   "extract <paper.pdf>",
	Short: "Extract narratable text from a PDF",
	Long: `Extract the text a narrator would read aloud and save it as a transcript
file. An existing non-empty transcript is reused instead of calling the
model again.

Examples:
  paper2audio extract paper.pdf
  paper2audio extract paper.pdf --out narration.txt --extractor openai`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output transcript path (default <paper>.txt)")
	extractCmd.Flags().StringVarP(&extractPrompt, "prompt", "p", "", "Override the extraction prompt")
	extractCmd.Flags().StringVar(&extractProvider, "extractor", "", "Extraction provider: gemini or openai")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if extractProvider != "" {
		cfg.Extraction.Provider = extractProvider
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("Invalid configuration: %w", err)
	}

	out := extractOut
	if out == "" {
		base := args[0]
		out = strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
	}

	extractor, err := newExtractor(ctx, cfg, log)
	if err != nil {
		return err
	}

	p := pipeline.New(extractor, nil, storage.NewLocalStore(), log)
	result, err := p.Extract(ctx, &pipeline.ExtractInput{
		PDFPath: args[0],
		OutPath: out,
		Prompt:  resolvePrompt(extractPrompt, cfg),
	})
	if err != nil {
		return fmt.Errorf("Failed to extract %s: %w", args[0], err)
	}

	if result.Narration.Cached {
		fmt.Printf("Transcript %s already exists, nothing to do\n", result.TranscriptPath)
		return nil
	}
	fmt.Printf("Saved extracted text to %s\n", result.TranscriptPath)
	return nil
}
