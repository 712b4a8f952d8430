package cmd

import (
	"os"
	"time"

	"github.com/cpoulain/corenlp-batch/corenlp"
	"github.com/spf13/cobra"
)

var (
	annotators  string
	memory      string
	corenlpHome string
	javaBin     string
	timeout     time.Duration
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [input_dir] [output_dir] [pipeline flags...]",
	Short: "Annotate every file in a directory",
	Long: `Run enumerates the files directly inside input_dir, writes them to a
temporary file list and invokes the CoreNLP pipeline once over the whole
batch. Everything after output_dir is forwarded to the pipeline verbatim,
for example:

  corenlp-batch run ./raw_texts ./annotations --replaceExtension

The output directory is created if absent. The temporary file list is
removed on every exit path, including pipeline failure.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if corenlpHome == "" {
			corenlpHome = os.Getenv("CORENLP_HOME")
		}
		if !cmd.Flags().Changed("memory") {
			if v := os.Getenv("CORENLP_MEMORY"); v != "" {
				memory = v
			}
		}

		p, err := corenlp.NewPipeline(corenlp.Config{
			Home:       corenlpHome,
			Java:       javaBin,
			Memory:     memory,
			Annotators: annotators,
			Timeout:    timeout,
		})
		if err != nil {
			return err
		}
		return p.Annotate(cmd.Context(), args[0], args[1], args[2:])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Unknown flags after the two positionals belong to the pipeline, so
	// flag parsing must stop at the first positional argument.
	runCmd.Flags().SetInterspersed(false)

	runCmd.Flags().StringVar(&annotators, "annotators", corenlp.DefaultAnnotators, "Comma-separated annotator list")
	runCmd.Flags().StringVar(&memory, "memory", "3g", "JVM max heap size (-Xmx), env CORENLP_MEMORY")
	runCmd.Flags().StringVar(&corenlpHome, "corenlp-home", "", "CoreNLP distribution directory, env CORENLP_HOME")
	runCmd.Flags().StringVar(&javaBin, "java", "java", "Java executable")
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "Kill the pipeline after this duration (0 = no limit)")
}
