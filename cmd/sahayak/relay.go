package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/phrazzld/sahayak-api/internal/redact"
	"github.com/phrazzld/sahayak-api/internal/relay"
)

// newRelayClient builds a relay client from the CLI config.
func newRelayClient(opts *rootOptions) (*relay.Client, error) {
	path, err := configPath(opts.configFile)
	if err != nil {
		return nil, err
	}
	cfg, err := loadRelayConfig(path)
	if err != nil {
		return nil, err
	}

	client, err := relay.NewClient(cfg, slog.Default())
	if err != nil {
		return nil, userError(err)
	}
	return client, nil
}

// userError replaces a relay failure with a message fit for the terminal.
// The detail is logged at debug level.
func userError(err error) error {
	slog.Debug("relay call failed", "error", redact.Error(err))

	var remoteErr *generation.RemoteCallError
	switch {
	case errors.Is(err, generation.ErrConfiguration):
		return errors.New("the relay is not configured; set relay.base_url and run `sahayak key set KEY`")
	case errors.As(err, &remoteErr) && (remoteErr.StatusCode == http.StatusUnauthorized ||
		remoteErr.StatusCode == http.StatusForbidden):
		return errors.New("the relay rejected the API key")
	default:
		return errors.New("failed to generate content, please try again")
	}
}
