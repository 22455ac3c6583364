// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
)

// credentials describes a client credentials grant, the token URL is
// discovered from the issuer when not given.
type credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	IssuerURL    string
	Scopes       []string
}

func (c credentials) enabled() bool {
	return c.ClientID != ""
}

func (c credentials) config(ctx context.Context) (*clientcredentials.Config, error) {
	if c.ClientSecret == "" {
		return nil, errors.New("--client-secret is required with --client-id")
	}

	url := c.TokenURL
	if url == "" {
		if c.IssuerURL == "" {
			return nil, errors.New("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, c.IssuerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to discover OIDC provider %s: %w", c.IssuerURL, err)
		}
		url = provider.Endpoint().TokenURL
	}

	return &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     url,
		Scopes:       c.Scopes,
	}, nil
}

// tokenSource caches the access token and fetches a new one once it expires.
func (c credentials) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	cfg, err := c.config(ctx)
	if err != nil {
		return nil, err
	}

	return cfg.TokenSource(ctx), nil
}

func flagCredentials() credentials {
	return credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		IssuerURL:    issuerURL,
		Scopes:       scopes,
	}
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the access token the other commands send with --client-id",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds := flagCredentials()
		if !creds.enabled() {
			return errors.New("--client-id is required")
		}

		source, err := creds.tokenSource(cmd.Context())
		if err != nil {
			return err
		}

		token, err := source.Token()
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&clientID, "client-id", "", "Client ID, requests carry a client credentials token when set")
	flags.StringVar(&clientSecret, "client-secret", "", "Client Secret")
	flags.StringVar(&tokenURL, "token-url", "", "Token URL")
	flags.StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	flags.StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
}
