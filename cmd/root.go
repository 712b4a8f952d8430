package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "corenlp-batch",
	Short: "Batch-annotate a directory of text files with Stanford CoreNLP",
	Long: `corenlp-batch drives a Stanford CoreNLP distribution over a whole
directory of input files in one subprocess invocation, writing one
annotation artifact per input file into the output directory.

The tool itself performs no NLP: it enumerates inputs, hands the batch to
the CoreNLP pipeline and propagates its exit status.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore errors)
		_ = godotenv.Load()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
