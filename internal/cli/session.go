package cli

import (
	"github.com/spf13/cobra"
)

// TokenResult is the session token response
type TokenResult struct {
	Token string `json:"token"`
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Request a new anti-cheat session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TokenResult

			if err := client.Get("/context-collapse-token", &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.Token); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCheckinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Check in the current session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"token": cfg.Token}

			if err := client.Post("/context-collapse-checkin", body, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("checked in")
			return nil
		},
	}
}
