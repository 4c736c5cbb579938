package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/spf13/cobra"
)

// requestFlags are the generation parameters shared by compose and generate.
type requestFlags struct {
	language  string
	grade     string
	subject   string
	challenge string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.language, "language", "l", "", "output language (default Hindi)")
	cmd.Flags().StringVarP(&f.grade, "grade", "g", "", "grade level, e.g. 4")
	cmd.Flags().StringVarP(&f.subject, "subject", "s", "", "subject, e.g. Mathematics")
	cmd.Flags().StringVar(&f.challenge, "challenge", "", "classroom challenge (tips)")
}

func (f *requestFlags) request(contentType string, args []string) domain.GenerationRequest {
	return domain.GenerationRequest{
		Type:      domain.ContentType(contentType),
		Prompt:    strings.Join(args, " "),
		Language:  f.language,
		Grade:     f.grade,
		Subject:   f.subject,
		Challenge: f.challenge,
	}
}

func newComposeCommand() *cobra.Command {
	var (
		flags       requestFlags
		contentType string
		image       bool
	)

	command := &cobra.Command{
		Use:   "compose [PROMPT...]",
		Short: "Print the prompt that would be sent to the language model",
		Long: "Print the prompt that would be sent to the language model. Nothing is sent over the network.\n\n" +
			"Content types: " + contentTypeList() + ". Any other type prints the prompt unchanged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(contentType, args)

			if image {
				fmt.Fprintln(cmd.OutOrStdout(), generation.ComposeImagePrompt(generation.ParamsFromRequest(req)))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), generation.ComposeRequest(req.WithDefaults()))
			return nil
		},
	}
	command.Flags().StringVarP(&contentType, "type", "t", "", "content type")
	command.Flags().BoolVar(&image, "image", false, "compose an illustration prompt instead")
	flags.register(command)

	return command
}

func contentTypeList() string {
	types := domain.ContentTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
