package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
	"k8s.io/klog/v2"

	"github.com/gomlx/go-vocab/internal/textio"
	"github.com/gomlx/go-vocab/vocab"
)

var (
	buildOut      string
	buildMinCount int
	buildUnknown  string
	buildNFC      bool
)

var buildCmd = &cobra.Command{
	Use:   "build <corpus>...",
	Short: "Count whitespace-separated tokens from corpora into a vocabulary file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(args)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "vocab.tsv", "output counts file")
	buildCmd.Flags().IntVar(&buildMinCount, "min-count", 0, "drop tokens seen fewer than this many times")
	buildCmd.Flags().StringVar(&buildUnknown, "unknown", vocab.DefaultUnknownToken, "unknown-token sentinel; empty disables fallback")
	buildCmd.Flags().BoolVar(&buildNFC, "nfc", false, "NFC-normalize tokens before counting")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(paths []string) error {
	voc := newVocabulary(buildUnknown)
	for _, path := range paths {
		if err := addCorpus(voc, path); err != nil {
			return err
		}
	}
	if buildMinCount > 1 {
		before := voc.Size()
		voc = voc.CopyAndPruneRares(buildMinCount)
		klog.V(1).Infof("pruned %d tokens below count %d", before-voc.Size(), buildMinCount)
	}
	klog.V(1).Infof("built %s", voc)
	return voc.Save(buildOut)
}

func newVocabulary(unknown string) *vocab.Vocabulary {
	if unknown == "" {
		return vocab.NewWithoutUnknown()
	}
	return vocab.NewWithUnknown(unknown)
}

func addCorpus(voc *vocab.Vocabulary, path string) error {
	lines, err := textio.Open(path)
	if err != nil {
		return errors.WithMessagef(err, "while reading corpus %q", path)
	}
	defer func() { _ = lines.Close() }()
	for lines.Next() {
		for _, token := range strings.Fields(lines.Text()) {
			if buildNFC {
				token = norm.NFC.String(token)
			}
			voc.Add(token)
		}
	}
	return errors.Wrapf(lines.Err(), "failed to read corpus %q", path)
}
