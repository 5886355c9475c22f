package cli

import (
	"fmt"
	"os"

	"github.com/corvidtools/cube3/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --start state.txt`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		startPath, _ := cmd.Flags().GetString("start")

		var g *cube.Grid
		if startPath != "" {
			f, err := os.Open(startPath)
			if err != nil {
				fmt.Printf("Error opening start state: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			g, err = cube.ParseGrid(f)
			if err != nil {
				fmt.Printf("Error parsing start state: %v\n", err)
				os.Exit(1)
			}
		} else {
			g = cube.NewSolvedGrid()
		}

		fmt.Printf("Applying moves: %s\n", moves)
		if startPath != "" {
			fmt.Printf("Starting from: %s\n", startPath)
		}

		parsedMoves, err := cube.ParseMoves(moves)
		if err != nil {
			fmt.Printf("Error parsing moves: %v\n", err)
			os.Exit(1)
		}

		for _, m := range parsedMoves {
			g.Apply(m)
		}

		fmt.Printf("\nCube state after applying moves:\n%s\n", g.String())
		fmt.Printf("Moves applied: %d\n", cube.GetMoveCount(parsedMoves))
		if g.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().String("start", "", "Path to a file holding the starting grid (solved if omitted)")
}
