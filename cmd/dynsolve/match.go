package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-dynsolve/pkg/games/wordgrid"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "List fixed length words matching letter positions",
	Long: `Indexes the dictionary by letter position and lists the words having every --fixed letter
and at least one of the --either letters, e.g. --fixed s1,a3,t5 --either h2,h4.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := setup(cmd); err != nil {
			return err
		}

		length, _ := cmd.Flags().GetInt("length")
		words, _ := cmd.Flags().GetStringSlice("words")
		fixed, _ := cmd.Flags().GetStringSlice("fixed")
		either, _ := cmd.Flags().GetStringSlice("either")

		ix, err := wordgrid.NewIndex(length, words...)
		if err != nil {
			return err
		}
		query, err := buildQuery(fixed, either)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		matched := ix.Match(query)
		fmt.Fprintf(out, "%s %s\n", faint("query"), query)
		for _, w := range matched {
			fmt.Fprintln(out, highlight(w))
		}
		fmt.Fprintf(out, "%s %d of %d words\n", success("matched"), len(matched), ix.Size())
		return nil
	},
}

// And of every fixed term, with the Or of the either terms
func buildQuery(fixed, either []string) (wordgrid.Query, error) {
	var and, or wordgrid.Query
	for _, term := range fixed {
		q, err := wordgrid.ParseAt(term)
		if err != nil {
			return nil, err
		}
		if and == nil {
			and = q
		} else {
			and = wordgrid.And(and, q)
		}
	}
	for _, term := range either {
		q, err := wordgrid.ParseAt(term)
		if err != nil {
			return nil, err
		}
		if or == nil {
			or = q
		} else {
			or = wordgrid.Or(or, q)
		}
	}

	switch {
	case and == nil && or == nil:
		return nil, fmt.Errorf("%w: no --fixed or --either terms", wordgrid.ErrInvalidWord)
	case and == nil:
		return or, nil
	case or == nil:
		return and, nil
	}
	return wordgrid.And(and, or), nil
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().Int("length", 5, "Word length")
	matchCmd.Flags().StringSliceP("words", "w", nil, "Dictionary words, comma separated")
	matchCmd.Flags().StringSlice("fixed", nil, "Required letters, as letter and 1-based position (s1,a3)")
	matchCmd.Flags().StringSlice("either", nil, "Letters of which at least one must match (h2,h4)")
}
