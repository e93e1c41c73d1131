package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"paper2audio/pipeline"
	"paper2audio/storage"
)

var (
	convertOut      string
	convertPrompt   string
	convertProvider string
	convertSpeaker  string
	convertVoice    string
	convertForce    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <paper.pdf>",
	Short: "Convert a PDF paper to a narrated WAV file",
	Long: `Run the full pipeline: extract the narratable text from the PDF with a
hosted model, synthesize speech chunk by chunk, and write a single WAV file.

The extracted text is saved next to the audio output (same name, .txt
extension) and reused on the next run, so a failed synthesis never pays
for extraction twice.

Examples:
  paper2audio convert paper.pdf
  paper2audio convert paper.pdf --out reading.wav --voice Puck
  paper2audio convert paper.pdf --extractor openai --speaker openai`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output WAV path (default paper_reading_<timestamp>.wav)")
	convertCmd.Flags().StringVarP(&convertPrompt, "prompt", "p", "", "Override the extraction prompt")
	convertCmd.Flags().StringVar(&convertProvider, "extractor", "", "Extraction provider: gemini or openai")
	convertCmd.Flags().StringVar(&convertSpeaker, "speaker", "", "Speech provider: gemini or openai")
	convertCmd.Flags().StringVar(&convertVoice, "voice", "", "Voice name for the speech provider")
	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false, "Overwrite an existing output file without asking")
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if convertProvider != "" {
		cfg.Extraction.Provider = convertProvider
	}
	if convertSpeaker != "" {
		cfg.Speech.Provider = convertSpeaker
	}
	if convertVoice != "" {
		cfg.Speech.Voice = convertVoice
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("Invalid configuration: %w", err)
	}

	out := convertOut
	if out == "" {
		out = fmt.Sprintf("paper_reading_%s.wav", time.Now().Format("20060102_150405"))
	}

	if !convertForce {
		ok, err := confirmOverwrite(out)
		if err != nil {
			return err
		}
		if !ok {
			log.Info().Msg("cancelled")
			return nil
		}
	}

	extractor, err := newExtractor(ctx, cfg, log)
	if err != nil {
		return err
	}
	synth, err := newSynthesizer(ctx, cfg, log)
	if err != nil {
		return err
	}

	p := pipeline.New(extractor, synth, storage.NewLocalStore(), log)
	result, err := p.Convert(ctx, &pipeline.ConvertInput{
		PDFPath: args[0],
		OutPath: out,
		Prompt:  resolvePrompt(convertPrompt, cfg),
	})
	if err != nil {
		return fmt.Errorf("Failed to convert %s: %w", args[0], err)
	}

	fmt.Printf("Wrote %s (%.1fs of audio)\n", result.WAVPath, result.Seconds)
	fmt.Printf("Transcript saved to %s\n", result.TranscriptPath)
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}

	fmt.Printf("WARNING: %s already exists. Overwrite? (yes/no): ", path)
	var response string
	fmt.Scanln(&response)

	return strings.ToLower(response) == "yes", nil
}
