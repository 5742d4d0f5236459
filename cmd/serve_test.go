package main

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownServer_ReturnsDespiteHungRequest(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}),
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go srv.Serve(ln) //nolint:errcheck

	// Park one request inside the handler so graceful drain can never finish.
	started := make(chan struct{})
	go func() {
		close(started)
		resp, reqErr := http.Get("http://" + ln.Addr().String())
		if reqErr == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}()
	<-started
	time.Sleep(50 * time.Millisecond)

	begin := time.Now()
	shutdownServer(srv, 100*time.Millisecond)
	elapsed := time.Since(begin)

	assert.Less(t, elapsed, 2*time.Second, "shutdown must give up after the grace period")
	assert.GreaterOrEqual(t, elapsed, 90*time.Millisecond, "shutdown should wait out the grace period for the hung request")
}

func TestShutdownServer_ImmediateWhenIdle(t *testing.T) {
	srv := &http.Server{Handler: http.NewServeMux()}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go srv.Serve(ln) //nolint:errcheck
	time.Sleep(20 * time.Millisecond)

	begin := time.Now()
	shutdownServer(srv, 5*time.Second)
	assert.Less(t, time.Since(begin), time.Second, "idle server shuts down without waiting for the grace period")
}
