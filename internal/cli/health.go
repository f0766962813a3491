package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server liveness",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The liveness endpoint returns a bare "OK" body
			if err := client.Get("/", nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("OK")
			return nil
		},
	}
}
