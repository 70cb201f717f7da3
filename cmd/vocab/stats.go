package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gomlx/go-vocab/vocab"
)

var statsTop int

var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statsIndexStyle  = lipgloss.NewStyle().Faint(true).Width(8)
	statsTokenStyle  = lipgloss.NewStyle().Width(24)
)

var statsCmd = &cobra.Command{
	Use:   "stats <counts-file>",
	Short: "Show the most frequent tokens of a vocabulary file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(args[0])
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsTop, "top", "n", 20, "number of tokens to show")
	rootCmd.AddCommand(statsCmd)
}

func runStats(countsPath string) error {
	voc, err := vocab.Load(countsPath, "")
	if err != nil {
		return err
	}

	type entry struct {
		index int
		token string
		count int
	}
	tokens := voc.Tokens()
	rows := make([]entry, len(tokens))
	for i, token := range tokens {
		count, err := voc.Count(token)
		if err != nil {
			return err
		}
		rows[i] = entry{index: i + 1, token: token, count: count}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].count > rows[j].count })
	if statsTop > 0 && len(rows) > statsTop {
		rows = rows[:statsTop]
	}

	fmt.Printf("%s (%d tokens)\n", statsHeaderStyle.Render("vocabulary"), voc.Size())
	fmt.Println(statsHeaderStyle.Width(8).Render("INDEX") +
		statsHeaderStyle.Width(24).Render("TOKEN") +
		statsHeaderStyle.Render("COUNT"))
	for _, row := range rows {
		fmt.Println(
			statsIndexStyle.Render(fmt.Sprintf("%d", row.index)) +
				statsTokenStyle.Render(row.token) +
				fmt.Sprintf("%d", row.count))
	}
	return nil
}
