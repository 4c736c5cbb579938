package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentCalls bounds the relay calls issued by one generate command.
const maxConcurrentCalls = 4

// contentGenerator is the part of relay.Client used by generate.
type contentGenerator interface {
	Relay(ctx context.Context, prompt string) (string, error)
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// generateResult is the outcome of one relay call.
type generateResult struct {
	contentType string
	content     string
	err         error
}

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	var (
		flags requestFlags
		types []string
	)

	command := &cobra.Command{
		Use:   "generate [PROMPT...]",
		Short: "Generate content through the relay",
		Long: "Generate content through the relay, one call per --type, issued concurrently.\n" +
			"Without --type the prompt is sent unchanged.\n\n" +
			"Content types: " + contentTypeList() + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newRelayClient(opts)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			requests := make([]domain.GenerationRequest, 0, len(types))
			for _, t := range types {
				req := flags.request(t, args)
				if err := req.Validate(); err != nil {
					return err
				}
				requests = append(requests, req)
			}
			if len(requests) == 0 && strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("a prompt is required")
			}

			results := generateAll(cmd.Context(), client, requests, strings.Join(args, " "))
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	command.Flags().StringArrayVarP(&types, "type", "t", nil, "content type; repeat for several")
	flags.register(command)

	return command
}

// generateAll issues one call per request concurrently, or a single raw
// relay call for prompt when requests is empty. Results keep request order.
func generateAll(
	ctx context.Context,
	client contentGenerator,
	requests []domain.GenerationRequest,
	prompt string,
) []generateResult {
	if len(requests) == 0 {
		content, err := client.Relay(ctx, prompt)
		return []generateResult{{content: content, err: err}}
	}

	results := make([]generateResult, len(requests))
	var g errgroup.Group
	g.SetLimit(maxConcurrentCalls)

	for i, req := range requests {
		g.Go(func() error {
			content, err := client.Generate(ctx, req)
			results[i] = generateResult{contentType: string(req.Type), content: content, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// printResults writes each result under its content type and reports a
// generic error if any call failed.
func printResults(w io.Writer, results []generateResult) error {
	var firstErr error
	for i, result := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", result.contentType)
		}
		if result.err != nil {
			fmt.Fprintln(w, "(failed)")
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		fmt.Fprintln(w, result.content)
	}

	if firstErr != nil {
		return userError(firstErr)
	}
	return nil
}
