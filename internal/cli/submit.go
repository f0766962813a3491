package cli

import (
	"github.com/spf13/cobra"
)

// SubmitResult is the stored or updated score returned on acceptance
type SubmitResult struct {
	Score      int    `json:"score"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
}

func newSubmitCmd() *cobra.Command {
	var (
		name       string
		score      int
		difficulty string
		scoreToken string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score using the current session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"name":       name,
				"score":      score,
				"difficulty": difficulty,
				"scoreToken": scoreToken,
				"token":      cfg.Token,
			}

			var result SubmitResult
			if err := client.Post("/leaderboard", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&score, "score", 0, "Score value")
	cmd.Flags().StringVar(&difficulty, "difficulty", "normal", "Difficulty: easy, normal, hard")
	cmd.Flags().StringVar(&scoreToken, "score-token", "", "Per-player score token")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("score-token")

	return cmd
}
