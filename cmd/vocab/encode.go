package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gomlx/go-vocab/vocab"
)

var encodeUnknown string

var encodeCmd = &cobra.Command{
	Use:   "encode <counts-file> [text...]",
	Short: "Map whitespace-separated tokens to index sequences",
	Long: `encode loads a vocabulary counts file and prints one line of
space-separated indices per input line. Input lines come from the remaining
arguments, or from stdin when none are given. Tokens missing from the
vocabulary map to the unknown sentinel.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncode(args[0], args[1:])
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeUnknown, "unknown", vocab.DefaultUnknownToken, "unknown-token sentinel the counts file was built with; empty for none")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(countsPath string, texts []string) error {
	voc, err := vocab.Load(countsPath, encodeUnknown)
	if err != nil {
		return err
	}
	if len(texts) > 0 {
		for _, text := range texts {
			if err := encodeLine(voc, text); err != nil {
				return err
			}
		}
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := encodeLine(voc, scanner.Text()); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "failed to read stdin")
}

func encodeLine(voc *vocab.Vocabulary, text string) error {
	indices, err := voc.IndicesOf(strings.Fields(text))
	if err != nil {
		return err
	}
	fields := make([]string, len(indices))
	for i, idx := range indices {
		fields[i] = strconv.Itoa(idx)
	}
	_, err = fmt.Println(strings.Join(fields, " "))
	return err
}
