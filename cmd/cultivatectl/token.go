package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/Cultivation_Go/internal/auth"
)

func newTokenCmd() *cobra.Command {
	var userID, secret, issuer string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("no signing secret: pass --secret or set JWT_SECRET")
			}

			token, err := auth.NewTokenManager(secret, issuer, nil).Issue(userID, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to embed as the subject")
	cmd.Flags().StringVar(&secret, "secret", "", "HMAC signing secret (default $JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", envOr("JWT_ISSUER", "cultivation"), "token issuer")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
