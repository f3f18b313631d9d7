//go:build integration

package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Run with: go test -tags=integration ./cmd/main -run TestRun_ServerFailure -count=1
func TestRun_ServerFailure(t *testing.T) {
	ctx := context.Background()

	pgC, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("hestia"),
		postgres.WithUsername("hestia"),
		postgres.WithPassword("hestia"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pgC)
	require.NoError(t, err)

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	// the API port is already taken, so the server cannot start
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := &config.Config{
		Env: "local",
		HTTP: config.HTTPConfig{
			Port:            busy.Addr().(*net.TCPAddr).Port,
			RequestTimeout:  time.Second,
			ShutdownTimeout: time.Second,
		},
		Postgres: config.PostgresConfig{
			Host: host, Port: port.Port(), User: "hestia", Password: "hestia", Dbname: "hestia",
		},
	}

	runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err = run(runCtx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server failed")
}
