package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-dynsolve/internal/config"
	"github.com/IlikeChooros/go-dynsolve/pkg/bench"
	"github.com/IlikeChooros/go-dynsolve/pkg/games/pegsolitaire"
	"github.com/IlikeChooros/go-dynsolve/pkg/tree"
)

var pegCmd = &cobra.Command{
	Use:   "peg",
	Short: "Solve peg solitaire",
	Long:  `Searches for a sequence of jumps leaving a single peg, starting from a board with one empty hole.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("board")
		layout, err := pegsolitaire.LayoutByName(name)
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetUint64("max-visits"); v > 0 {
			cfg.Solver.PegMaxVisits = v
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if all, _ := cmd.Flags().GetBool("all-holes"); all {
			threads, _ := cmd.Flags().GetInt("threads")
			if threads <= 0 {
				threads = cfg.Solver.BenchThreads
			}
			logger.Debug("solving every hole", "layout", layout.Name, "threads", threads)
			return solveAllHoles(ctx, cmd.OutOrStdout(), layout, cfg.Solver, threads)
		}

		hole, _ := cmd.Flags().GetInt("hole")
		if hole < 0 {
			hole = layout.DefaultHole()
		}
		if hole >= layout.Holes() {
			return fmt.Errorf("hole %d outside the %s board (%d holes)", hole, layout.Name, layout.Holes())
		}

		opts := []pegsolitaire.Option{pegsolitaire.WithLimits(solverLimits(cfg.Solver))}
		if interactive() {
			listener := tree.NewStatsListener()
			listener.SetVisitInterval(250_000).OnVisit(func(s tree.SearchStats) {
				fmt.Fprintf(os.Stderr, "\r%s%d visits, depth %d, cache %d", bench.ANSI_CLEAR_LINE,
					s.Visits, s.MaxDepth, s.CacheSize)
			}).OnStop(func(tree.SearchStats) {
				fmt.Fprintf(os.Stderr, "\r%s", bench.ANSI_CLEAR_LINE)
			})
			opts = append(opts, pegsolitaire.WithListener(listener))
		}

		sol, err := pegsolitaire.Solve(ctx, layout, layout.Start(hole), opts...)
		if err != nil {
			return err
		}
		logger.Debug("peg search done", "visits", sol.Visits, "cache", sol.CacheSize, "hits", sol.CacheHits)
		printSolution(cmd.OutOrStdout(), layout, sol)
		return nil
	},
}

// Fresh limits per search, built from the solver config
func solverLimits(cfg config.SolverConfig) *tree.Limits {
	limits := tree.DefaultLimits()
	if cfg.PegMaxVisits > 0 {
		limits.SetVisits(cfg.PegMaxVisits)
	}
	if cfg.PegMovetimeMs > 0 {
		limits.SetMovetime(cfg.PegMovetimeMs)
	}
	return limits
}

func printSolution(w io.Writer, layout *pegsolitaire.Layout, sol pegsolitaire.Solution) {
	fmt.Fprint(w, layout.Render(sol.Start))
	if !sol.Found {
		fmt.Fprintf(w, "%s after %d visits\n", failure("no solution"), sol.Visits)
		return
	}

	for i, m := range sol.Moves {
		fmt.Fprintf(w, "%s %s\n", faint(fmt.Sprintf("%2d.", i+1)), highlight(m.String()))
	}
	fmt.Fprint(w, layout.Render(sol.Final()))
	fmt.Fprintf(w, "%s in %d moves, %d visits\n", success("solved"), len(sol.Moves), sol.Visits)
}

func solveAllHoles(ctx context.Context, w io.Writer, layout *pegsolitaire.Layout, cfg config.SolverConfig, threads int) error {
	holes := make([]int, layout.Holes())
	for i := range holes {
		holes[i] = i
	}

	arena := bench.NewArena(holes, func(ctx context.Context, hole int) (pegsolitaire.Solution, error) {
		return pegsolitaire.Solve(ctx, layout, layout.Start(hole), pegsolitaire.WithLimits(solverLimits(cfg)))
	}).WithContext(ctx).Setup(threads)

	var listener bench.ListenerLike[int, pegsolitaire.Solution] = bench.DefaultListener[int, pegsolitaire.Solution]{}
	if interactive() {
		listener = bench.NewProgressListener[int, pegsolitaire.Solution](os.Stderr)
	}

	results, err := arena.Run(listener)
	for _, r := range results {
		// skipped after cancellation
		if r.Elapsed == 0 {
			continue
		}
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "hole %2d %s %v\n", r.Job, failure("error"), r.Err)
		case r.Result.Found:
			fmt.Fprintf(w, "hole %2d %s %d moves, %d visits\n", r.Job, success("solved"),
				len(r.Result.Moves), r.Result.Visits)
		default:
			fmt.Fprintf(w, "hole %2d %s %d visits\n", r.Job, failure("unsolvable"), r.Result.Visits)
		}
	}
	fmt.Fprintf(w, "%d/%d holes searched, %d failed\n", arena.Solved(), len(holes), arena.Failed())
	return err
}

func init() {
	rootCmd.AddCommand(pegCmd)
	pegCmd.Flags().StringP("board", "b", "english", "Board layout (english, triangle)")
	pegCmd.Flags().Int("hole", -1, "Initially empty hole, defaults to the layout's centre")
	pegCmd.Flags().Bool("all-holes", false, "Solve every starting hole in parallel")
	pegCmd.Flags().Int("threads", 0, "Worker count for --all-holes, defaults to the config")
	pegCmd.Flags().Uint64("max-visits", 0, "Step budget per search, overrides the config")
}
