package main

import (
	"context"
	"fmt"
	"lookalike/internal/api/handler/v1handler"
	"lookalike/internal/api/specs/v1specs"
	"lookalike/internal/config"
	"lookalike/pkg/logger"
	"lookalike/pkg/serrors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// signToken returns an RS256 token for subject that expires ttl after now.
func signToken(privateKeyPEM, subject string, ttl time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", serrors.With(serrors.ErrInvalidConfig, "subject is required")
	}
	if ttl <= 0 {
		return "", serrors.With(serrors.ErrInvalidConfig, "ttl must be positive, got %s", ttl)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInvalidConfig, err, "could not parse RSA private key")
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// verifyToken checks token the same way the API does and returns its subject.
func verifyToken(ctx context.Context, publicKeyPEM, token string) (string, error) {
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: publicKeyPEM})
	if err != nil {
		return "", err //nolint: wrapcheck
	}
	if !sec.Enabled() {
		return "", serrors.With(serrors.ErrInvalidConfig, "no JWT public key configured")
	}

	ctx, err = sec.HandleBearerAuth(ctx, "", v1specs.BearerAuth{Token: token})
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return v1handler.GetSubjectFromContext(ctx), nil
}

// JWTCommand constructs the 'jwt' command that mints and checks RS256 bearer
// tokens for the hunt API using the configured key pair.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates and verifies bearer tokens for the hunt API",
	}

	sign := &cobra.Command{
		Use:   "sign",
		Short: "Generates a JWT for given subject",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			signed, err := signToken(cfg.JWT.PrivateKey, subject, ttl, time.Now())
			if err != nil {
				logger.Fatal(cmd.Context(), "could not generate JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}
	sign.Flags().String("subject", "", "JWT subject (e.g., analyst or service name)")
	sign.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = sign.MarkFlagRequired("subject")

	verify := &cobra.Command{
		Use:   "verify <token>",
		Short: "Checks a JWT against the configured public key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			subject, err := verifyToken(cmd.Context(), cfg.JWT.PublicKey, args[0])
			if err != nil {
				logger.Fatal(cmd.Context(), "token rejected", zap.Error(err))
			}

			fmt.Println(subject) //nolint: forbidigo
		},
	}

	cmd.AddCommand(sign, verify)

	return cmd
}
