package v1handler

import (
	"context"
	"errors"
	"lookalike/internal/api/specs/v1specs"
	"lookalike/internal/hunt"
	"lookalike/pkg/logger"
	"lookalike/pkg/serrors"
	"net/http"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Hunter hunt.Hunter
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewError maps err to an HTTP status using its semantic kind. Messages of
// server side failures are logged and never sent to the client.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	kind, message := classify(err)

	res := &v1specs.ErrorStatusCode{StatusCode: statusOf(kind)}
	res.Response.Code = kind.Error()
	res.Response.Message = defaultMessage(kind)

	if bodyTooLarge(err) {
		res.StatusCode = http.StatusRequestEntityTooLarge
	}

	if res.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return res
	}

	if message != "" {
		res.Response.Message = message
	}
	logger.Info(ctx, "request rejected", zap.String("code", res.Response.Code), zap.Error(err))

	return res
}

// ErrorHandler renders errors the generated server raises before a handler
// runs, such as undecodable bodies, in the same shape as NewError.
func (h Handler) ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	body, _ := res.Response.MarshalJSON()
	if _, err := w.Write(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// classify returns the semantic kind of err and the message that may be
// shown to the client.
func classify(err error) (serrors.Kind, string) {
	var secErr *ogenerrors.SecurityError
	if errors.As(err, &secErr) {
		if errors.Is(secErr.Err, ogenerrors.ErrSecurityRequirementIsNotSatisfied) {
			return serrors.ErrUnauthorized, "missing bearer token"
		}

		return serrors.ErrUnauthorized, messageOf(secErr.Err)
	}

	var decodeErr *ogenerrors.DecodeRequestError
	if errors.As(err, &decodeErr) {
		return serrors.ErrBadRequest, "invalid request body: " + decodeErr.Err.Error()
	}

	kind := serrors.KindOf(err)
	if kind == nil {
		return serrors.ErrInternal, ""
	}

	return kind, messageOf(err)
}

func bodyTooLarge(err error) bool {
	var decodeErr *ogenerrors.DecodeRequestError
	if errors.As(err, &decodeErr) {
		err = decodeErr.Err
	}
	var tooLarge *http.MaxBytesError

	return errors.As(err, &tooLarge)
}

func messageOf(err error) string {
	var semantic *serrors.Error
	if errors.As(err, &semantic) {
		return semantic.Message()
	}

	return ""
}

func statusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrInvalidConfig, serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(kind serrors.Kind) string {
	switch kind {
	case serrors.ErrInvalidConfig:
		return "invalid hunt configuration"
	case serrors.ErrBadRequest:
		return "bad request"
	case serrors.ErrUnauthorized:
		return "unauthorized"
	case serrors.ErrTimeout:
		return "request timed out"
	case serrors.ErrUnavailable:
		return "service unavailable"
	default:
		return "internal error"
	}
}
