// Command vocab builds, prunes, inspects, and applies vocabulary counts
// files: it turns whitespace-separated corpora into token counts, and text
// into index sequences using a previously built vocabulary.
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var rootCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Build and apply token vocabularies",
	Long: `vocab maintains token->index vocabularies for sequence-model
preprocessing: build counts from a corpus, prune rare tokens, encode text
into index sequences, and inspect the result.`,
	SilenceUsage: true,
}

func main() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}
