package cli

import (
	"fmt"
	"os"

	"github.com/corvidtools/cube3/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show cube state",
	Long: `Show displays the cube state after applying a scramble to a solved
cube, or after applying it to a state read from --start.

Examples:
  cube show "R U R' U'"
  cube show "" --start state.txt`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		startPath, _ := cmd.Flags().GetString("start")

		g, err := loadGridOrSolved(startPath)
		if err != nil {
			fmt.Printf("Error reading start state: %v\n", err)
			os.Exit(1)
		}

		if scramble != "" {
			moves, err := cube.ParseMoves(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			for _, m := range moves {
				g.Apply(m)
			}
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Cube state:")
		}

		fmt.Println(g.String())
		if g.IsSolved() {
			fmt.Println("Status: solved")
		}
	},
}

func init() {
	showCmd.Flags().String("start", "", "Path to a file holding the starting grid (solved if omitted)")
}
