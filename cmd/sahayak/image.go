package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/spf13/cobra"
)

func newImageCommand(opts *rootOptions) *cobra.Command {
	var grade, subject string

	command := &cobra.Command{
		Use:   "image PROMPT...",
		Short: "Generate an educational illustration and print its URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.TrimSpace(strings.Join(args, " "))
			if prompt == "" {
				return errors.New("a prompt is required")
			}

			client, err := newRelayClient(opts)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			imagePrompt := generation.ComposeImagePrompt(generation.Params{
				Prompt:  prompt,
				Grade:   grade,
				Subject: subject,
			})

			url, err := client.GenerateImage(cmd.Context(), imagePrompt)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	command.Flags().StringVarP(&grade, "grade", "g", "", "grade level, e.g. 4")
	command.Flags().StringVarP(&subject, "subject", "s", "", "subject, e.g. Science")

	return command
}
