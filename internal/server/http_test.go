package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_StartStop(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := NewHTTPServer(handler, "127.0.0.1:0")
	assert.Equal(t, "127.0.0.1:0", srv.Address())

	done := make(chan error, 1)
	go func() {
		done <- srv.Start(NewPlainListener())
	}()

	// give the listener a moment to come up
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_Start_ListenFailure(t *testing.T) {
	srv := NewHTTPServer(http.NotFoundHandler(), "invalid-address")

	err := srv.Start(NewPlainListener())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
