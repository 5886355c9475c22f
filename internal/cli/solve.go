package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/corvidtools/cube3/internal/cube"
	"github.com/corvidtools/cube3/internal/kociemba"
	"github.com/corvidtools/cube3/internal/storage"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a cube with the two-phase algorithm",
	Long: `Solve reads a cube state (solved by default, or a scramble applied to a
solved cube, or a state read from --start) and finds a move sequence that
returns it to solved using the two-phase search.

Use --headless for programmatic output (space-separated moves only).
Use --save to record the solve in the history store (~/.cube3/cube3.db).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		startPath, _ := cmd.Flags().GetString("start")
		compact, _ := cmd.Flags().GetBool("compact")
		headless, _ := cmd.Flags().GetBool("headless")
		save, _ := cmd.Flags().GetBool("save")

		var g *cube.Grid
		if startPath != "" {
			f, err := os.Open(startPath)
			if err != nil {
				if !headless {
					fmt.Printf("Error opening start state: %v\n", err)
				}
				os.Exit(1)
			}
			defer f.Close()
			g, err = cube.ParseGrid(f)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing start state: %v\n", err)
				}
				os.Exit(1)
			}
		} else {
			g = cube.NewSolvedGrid()
		}

		if scramble != "" {
			moves, err := cube.ParseMoves(scramble)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing scramble: %v\n", err)
				}
				os.Exit(1)
			}
			for _, m := range moves {
				g.Apply(m)
			}
			if !headless {
				fmt.Printf("Scramble: %s\n", scramble)
			}
		}

		var repo *storage.SolveRepository
		var solveID string
		if save {
			repo = openSolveRepository(headless)
			if repo != nil {
				id, err := repo.Create(scramble, "")
				if err != nil && !headless {
					fmt.Printf("Warning: failed to record solve start: %v\n", err)
				}
				solveID = id
			}
		}

		start := time.Now()
		solution, err := kociemba.Solve(g)
		elapsed := time.Since(start)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}

		formatted := cube.FormatSolution(solution.Moves, !compact)
		moveCount := cube.GetMoveCount(solution.Moves)

		if repo != nil && solveID != "" {
			if err := repo.End(solveID, formatted, moveCount, solution.Phase1Moves, solution.Phase2Moves); err != nil && !headless {
				fmt.Printf("Warning: failed to record solve result: %v\n", err)
			}
		}

		if headless {
			fmt.Print(formatted)
			return
		}

		if formatted == "" {
			formatted = "(already solved)"
		}
		fmt.Printf("Solution: %s\n", formatted)
		fmt.Printf("Moves: %d (phase 1: %d, phase 2: %d)\n", moveCount, solution.Phase1Moves, solution.Phase2Moves)
		fmt.Printf("Solved in: %s\n", elapsed.Round(time.Millisecond))
		if save && solveID != "" {
			fmt.Printf("Saved as: %s\n", solveID)
		}
	},
}

func openSolveRepository(headless bool) *storage.SolveRepository {
	db, err := storage.OpenDefault()
	if err != nil {
		if !headless {
			fmt.Printf("Warning: could not open history store: %v\n", err)
		}
		return nil
	}
	if err := db.MigrateUp(); err != nil {
		if !headless {
			fmt.Printf("Warning: could not migrate history store: %v\n", err)
		}
		return nil
	}
	return storage.NewSolveRepository(db)
}

func init() {
	solveCmd.Flags().String("start", "", "Path to a file holding the starting grid (solved if omitted)")
	solveCmd.Flags().Bool("compact", false, "Print compact move tokens (U2, R') instead of expanded single letters")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("save", false, "Record this solve in the history store")
}
