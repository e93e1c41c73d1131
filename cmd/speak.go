package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"paper2audio/pipeline"
	"paper2audio/storage"
)

var (
	speakOut     string
	speakSpeaker string
	speakVoice   string
	speakForce   bool
)

var speakCmd = &cobra.Command{
	Use:   "speak <transcript.txt>",
	Short: "Synthesize speech from an extracted transcript",
	Long: `Read a transcript file and synthesize it to a single WAV file. Long
transcripts are split on line boundaries and synthesized chunk by chunk.

Examples:
  paper2audio speak paper.txt
  paper2audio speak paper.txt --out reading.wav --speaker openai --voice nova`,
	Args: cobra.ExactArgs(1),
	RunE: runSpeak,
}

func init() {
	speakCmd.Flags().StringVarP(&speakOut, "out", "o", "saved_paper.wav", "Output WAV path")
	speakCmd.Flags().StringVar(&speakSpeaker, "speaker", "", "Speech provider: gemini or openai")
	speakCmd.Flags().StringVar(&speakVoice, "voice", "", "Voice name for the speech provider")
	speakCmd.Flags().BoolVarP(&speakForce, "force", "f", false, "Overwrite an existing output file without asking")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if speakSpeaker != "" {
		cfg.Speech.Provider = speakSpeaker
	}
	if speakVoice != "" {
		cfg.Speech.Voice = speakVoice
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("Invalid configuration: %w", err)
	}

	if !speakForce {
		ok, err := confirmOverwrite(speakOut)
		if err != nil {
			return err
		}
		if !ok {
			log.Info().Msg("cancelled")
			return nil
		}
	}

	synth, err := newSynthesizer(ctx, cfg, log)
	if err != nil {
		return err
	}

	p := pipeline.New(nil, synth, storage.NewLocalStore(), log)
	result, err := p.Speak(ctx, &pipeline.SpeakInput{
		TextPath: args[0],
		OutPath:  speakOut,
	})
	if err != nil {
		return fmt.Errorf("Failed to speak %s: %w", args[0], err)
	}

	fmt.Printf("Wrote %s (%.1fs of audio)\n", result.WAVPath, result.Seconds)
	return nil
}
