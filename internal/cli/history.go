package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past solves recorded by 'solve --save'",
	Long: `History lists solves previously recorded with 'cube solve --save',
most recent first, from the history store at ~/.cube3/cube3.db.`,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		repo := openSolveRepository(false)
		if repo == nil {
			os.Exit(1)
		}

		solves, err := repo.List(limit)
		if err != nil {
			fmt.Printf("Error listing solves: %v\n", err)
			os.Exit(1)
		}

		if len(solves) == 0 {
			fmt.Println("No recorded solves.")
			return
		}

		for _, s := range solves {
			fmt.Printf("%s  started %s\n", s.SolveID, s.StartedAt.Format("2006-01-02 15:04:05"))
			if s.ScrambleText != nil {
				fmt.Printf("  scramble: %s\n", *s.ScrambleText)
			}
			if s.SolutionText != nil {
				fmt.Printf("  solution: %s\n", *s.SolutionText)
			}
			if s.MoveCount != nil {
				fmt.Printf("  moves: %d\n", *s.MoveCount)
			}
			if s.DurationMs != nil {
				fmt.Printf("  duration: %dms\n", *s.DurationMs)
			}
		}
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of solves to list")
	rootCmd.AddCommand(historyCmd)
}
