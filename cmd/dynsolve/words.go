package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-dynsolve/pkg/games/wordgrid"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Find dictionary words on a letter grid",
	Long:  `Lists every dictionary word spelled by a path of adjacent, distinct cells of the grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(cmd); err != nil {
			return err
		}

		letters, _ := cmd.Flags().GetString("grid")
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")
		words, _ := cmd.Flags().GetStringSlice("words")

		g, err := wordgrid.NewGrid(rows, cols, letters)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		found, err := wordgrid.FindAllWords(ctx, g, wordgrid.NewTrie(words...))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, g)
		for _, f := range found {
			cells := make([]string, len(f.Path))
			for i, c := range f.Path {
				cells[i] = fmt.Sprint(c)
			}
			fmt.Fprintf(out, "%s %s\n", highlight(f.Word), faint(strings.Join(cells, " ")))
		}
		fmt.Fprintf(out, "%s %d distinct words\n", success("found"), len(wordgrid.Words(found)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().StringP("grid", "g", "", "Grid letters, row by row")
	wordsCmd.Flags().Int("rows", 4, "Grid rows")
	wordsCmd.Flags().Int("cols", 4, "Grid columns")
	wordsCmd.Flags().StringSliceP("words", "w", nil, "Dictionary words, comma separated")
	_ = wordsCmd.MarkFlagRequired("grid")
}
