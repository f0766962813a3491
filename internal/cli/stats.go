package cli

import (
	"github.com/spf13/cobra"
)

// SubsResult is the channel stats proxy response
type SubsResult struct {
	ChannelID       string `json:"channel_id"`
	SubscriberCount string `json:"subscriber_count"`
	ViewCount       string `json:"view_count"`
	VideoCount      string `json:"video_count"`
}

func newSubsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subs",
		Short: "Show subscriber stats for the configured channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SubsResult

			if err := client.Get("/youtubestats/andy/subscribers", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
