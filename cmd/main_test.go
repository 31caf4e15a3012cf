package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CruiseBookingService/internal/config"
	"github.com/m04kA/SMC-CruiseBookingService/pkg/logger"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Server.HTTPPort = freePort(t)
	cfg.Server.ShutdownTimeout = 2
	cfg.Metrics.Enabled = false
	cfg.Storage.Driver = config.StorageMemory
	cfg.Events.Driver = config.EventsChannel
	return cfg
}

func TestRun_StorageFailureReturnsError(t *testing.T) {
	log, err := logger.NewWithWriter(io.Discard, "error")
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Storage.Driver = config.StoragePostgres
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 1
	cfg.Database.User = "postgres"
	cfg.Database.DBName = "cruises"
	cfg.Database.SSLMode = "disable"

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err = run(ctx, cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize booking storage")
	assert.Contains(t, err.Error(), "ping database")
}

func TestRun_GracefulShutdown(t *testing.T) {
	log, err := logger.NewWithWriter(io.Discard, "error")
	require.NoError(t, err)

	cfg := testConfig(t)
	url := "http://127.0.0.1:" + strconv.Itoa(cfg.Server.HTTPPort) + "/api/health"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg, log)
	}()

	// Сервер отвечает после старта роутера событий
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}

func TestRun_PortInUseReturnsError(t *testing.T) {
	log, err := logger.NewWithWriter(io.Discard, "error")
	require.NoError(t, err)

	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	cfg := testConfig(t)
	cfg.Server.HTTPPort = l.Addr().(*net.TCPAddr).Port

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = run(ctx, cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
}
