package v1handler

import (
	"context"
	"crypto/rsa"
	"lookalike/internal/api/specs/v1specs"
	"lookalike/internal/config"
	"lookalike/pkg/logger"
	"lookalike/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// SubjectKey is the context key under which the authenticated token subject is stored.
const SubjectKey CtxKey = "Subject"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is a PEM encoded RSA public key. When empty, requests are not authenticated.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens.
type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidConfig, err, "could not parse RSA public key")
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether tokens are verified.
func (s SecHandler) Enabled() bool {
	return s.key != nil
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// HandleBearerAuth validates the bearer token and returns a context carrying
// its subject. Without a public key every token is accepted.
func (s SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	if s.key == nil {
		return ctx, nil
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(t.Token), &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, SubjectKey, claims.Subject)

	return logger.WithFields(ctx, zap.String("subject", claims.Subject), zap.String("operation", operationName)), nil
}

// AllowAnonymous lets requests without an Authorization header reach next
// when no public key is configured, so the API stays usable unauthenticated.
func (s SecHandler) AllowAnonymous(next http.Handler) http.Handler {
	if s.key != nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			r = r.Clone(r.Context())
			r.Header.Set("Authorization", "Bearer anonymous")
		}
		next.ServeHTTP(w, r)
	})
}

// GetSubjectFromContext returns the authenticated subject, or "" when the
// request was not authenticated.
func GetSubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)

	return s
}
