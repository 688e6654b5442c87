package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"lookalike/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotRegistered,
		serrors.ErrTimeout,
		serrors.ErrNoAnswer,
		serrors.ErrInvalidName,
		serrors.ErrUnavailable,
		serrors.ErrInternal,
		serrors.ErrInvalidConfig,
		serrors.ErrBadRequest,
		serrors.ErrUnauthorized,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrNotRegistered, serrors.ErrTimeout, "timeouts must never look like NXDOMAIN")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("i/o timeout")

	e1 := serrors.With(serrors.ErrNotRegistered, "%s does not exist", "ozn.com")
	require.Equal(t, "ozn.com does not exist", e1.Error())

	e2 := serrors.Wrap(serrors.ErrTimeout, base, "lookup ozn.com")
	require.Equal(t, "lookup ozn.com: i/o timeout", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNoAnswer)
	require.Equal(t, "NO_ANSWER", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "exchange")

	require.ErrorIs(t, e, serrors.ErrUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotRegistered)
}

func TestIsThroughFmtWrapping(t *testing.T) {
	e := fmt.Errorf("could not resolve: %w", serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "lookup"))

	require.ErrorIs(t, e, serrors.ErrTimeout)
	require.ErrorIs(t, e, context.DeadlineExceeded)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInvalidName, base, "idna")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrInvalidName, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrNoAnswer, serrors.KindOf(serrors.KindOnly(serrors.ErrNoAnswer)))
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(serrors.ErrTimeout))
	require.Equal(t, serrors.ErrInvalidConfig,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(serrors.ErrInvalidConfig, "no zones"))))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}
