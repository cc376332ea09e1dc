package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-dynsolve/pkg/games/shutthebox"
)

var shutTheBoxCmd = &cobra.Command{
	Use:   "shut-the-box",
	Short: "Find the best tiles to close for a roll",
	Long:  `Builds the dependency graph of every reachable position and picks the action with the lowest expected final score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		dice, _ := cmd.Flags().GetUint8("dice")
		if dice < shutthebox.MinRoll || dice > shutthebox.MaxRoll {
			return fmt.Errorf("dice value %d outside %d..%d", dice, shutthebox.MinRoll, shutthebox.MaxRoll)
		}
		tiles, _ := cmd.Flags().GetString("tiles")
		open, err := shutthebox.ParseTiles(tiles)
		if err != nil {
			return err
		}

		state := shutthebox.State{DiceValue: dice, TilesOpen: open}
		action, value, found, err := shutthebox.Solve(state, shutthebox.WithLogger(logger))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", faint("state"), state)
		if !found {
			fmt.Fprintf(out, "%s no tiles can be closed, final score %d\n", failure("game over"), state.Score())
			return nil
		}
		fmt.Fprintf(out, "%s %s %s %.4f\n", success("close"), highlight(action.String()),
			faint("expected score"), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shutTheBoxCmd)
	shutTheBoxCmd.Flags().Uint8P("dice", "d", 7, "Sum of the two dice")
	shutTheBoxCmd.Flags().StringP("tiles", "t", "111111111", "Open tiles 1 to 9, as a string of 0 and 1")
}
