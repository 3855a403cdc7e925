package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukaszlop/ketoggler/internal/service"
)

const defaultTokenTTL = 24 * time.Hour

func tokenCommand() *cobra.Command {
	var (
		userID string
		ttl    time.Duration
	)

	command := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user id",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if e.cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not configured")
			}

			token, err := service.NewTokenService(e.cfg.JWTSecret, ttl).GenerateToken(userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	command.Flags().StringVar(&userID, "user", "", "user id placed in the token subject")
	command.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")
	_ = command.MarkFlagRequired("user")
	return command
}
