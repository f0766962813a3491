package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ScoreRow is one leaderboard entry as returned by the API
type ScoreRow struct {
	Score      int    `json:"score"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
}

// LeaderboardResult is the leaderboard query response
type LeaderboardResult struct {
	Easy   []ScoreRow `json:"easy"`
	Normal []ScoreRow `json:"normal"`
	Hard   []ScoreRow `json:"hard"`
}

func newLeaderboardCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show a leaderboard page for all difficulties",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LeaderboardResult

			path := fmt.Sprintf("/leaderboard?page=%d", page)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
				return nil
			}

			printBoard := func(label string, rows []ScoreRow) {
				fmt.Printf("%s:\n", label)
				for i, row := range rows {
					fmt.Printf("  %2d. %-30s %d\n", (page-1)*10+i+1, row.Name, row.Score)
				}
				if len(rows) == 0 {
					fmt.Println("  (empty)")
				}
			}
			printBoard("Easy", result.Easy)
			printBoard("Normal", result.Normal)
			printBoard("Hard", result.Hard)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Leaderboard page (1-based)")

	return cmd
}
