package controller_test

import (
	"lookalike/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/hunts", nil)
	req.Header.Set("Origin", "https://soc.example.com")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"https://soc.example.com"})(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "https://soc.example.com", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Headers"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_Wildcard(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/hunts", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"*"})(next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "https://anywhere.example", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_UnknownOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/hunts", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"https://soc.example.com"})(next).ServeHTTP(rec, req)

	require.True(t, called)
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://soc.example.com")
	rec := httptest.NewRecorder()

	controller.WithCORS(nil)(next).ServeHTTP(rec, req)
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))
}
