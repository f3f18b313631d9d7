package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	unreachable := &config.Config{
		Env: "local",
		Postgres: config.PostgresConfig{
			Host: "127.0.0.1", Port: "1", User: "hestia", Password: "hestia", Dbname: "hestia",
		},
	}

	tests := []struct {
		name    string
		opts    options
		wantErr string
	}{
		{name: "unknown task", opts: options{task: "purge"}, wantErr: `unknown task "purge"`},
		{name: "import without file", opts: options{task: "import", company: "Acme"}, wantErr: "-file is required"},
		{name: "database unavailable", opts: options{task: "seed"}, wantErr: "failed to connect to DB"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			err := run(context.Background(), unreachable, logger, tt.opts, &out)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}
