package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"productreader/internal/config"
	"productreader/internal/reader"
	"productreader/pkg/domain"
	"productreader/pkg/serrors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_ZeroAddress(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	cfg.RPC.Endpoint = srv.URL

	_, err = lookup(t.Context(), cfg, domain.ProductAddress{})
	require.True(t, errors.Is(err, serrors.ErrUnboundTag))
	require.Equal(t, "Void address read", reader.StatusMessage(err))
	require.Zero(t, calls.Load())
}

func TestQueryCommand_ZeroAddress(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	cfg.RPC.Endpoint = srv.URL

	cmd := queryCommand(cfg)
	cmd.SetArgs([]string{"0x0000000000000000000000000000000000000000"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(t.Context())

	err = cmd.Execute()
	require.True(t, errors.Is(err, serrors.ErrUnboundTag))
	require.Zero(t, calls.Load())
}
