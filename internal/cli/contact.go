package cli

import (
	"github.com/spf13/cobra"
)

func newContactCmd() *cobra.Command {
	var (
		email   string
		name    string
		message string
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"email":   email,
				"message": message,
			}
			if name != "" {
				body["name"] = name
			}

			if err := client.Post("/contact", body, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("message sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Reply-to email address")
	cmd.Flags().StringVar(&name, "name", "", "Sender name")
	cmd.Flags().StringVar(&message, "message", "", "Message body")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
