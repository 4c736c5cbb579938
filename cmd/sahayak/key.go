package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newKeyCommand(opts *rootOptions) *cobra.Command {
	command := &cobra.Command{
		Use:   "key",
		Short: "Manage the relay API key stored in the config file",
	}
	command.AddCommand(newKeySetCommand(opts), newKeyShowCommand(opts))
	return command
}

func newKeySetCommand(opts *rootOptions) *cobra.Command {
	var baseURL string

	command := &cobra.Command{
		Use:   "set KEY",
		Short: "Store the relay API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			if key == "" {
				return errors.New("the API key cannot be blank")
			}

			path, err := configPath(opts.configFile)
			if err != nil {
				return err
			}

			if baseURL != "" {
				u, err := url.Parse(baseURL)
				if err != nil || u.Scheme == "" || u.Host == "" {
					return fmt.Errorf("invalid relay URL %q", baseURL)
				}
				if err := saveSetting(path, keyBaseURL, baseURL); err != nil {
					return err
				}
			}
			if err := saveSetting(path, keyAPIKey, key); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "API key saved to %s\n", path)
			return nil
		},
	}
	command.Flags().StringVar(&baseURL, "base-url", "", "relay base URL to store alongside the key")

	return command
}

func newKeyShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured relay URL and a masked API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts.configFile)
			if err != nil {
				return err
			}
			cfg, err := loadRelayConfig(path)
			if err != nil {
				return err
			}

			baseURL := cfg.BaseURL
			if baseURL == "" {
				baseURL = "(not set)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:   %s\n", path)
			fmt.Fprintf(out, "base_url: %s\n", baseURL)
			fmt.Fprintf(out, "api_key:  %s\n", maskKey(cfg.APIKey))
			return nil
		},
	}
}
