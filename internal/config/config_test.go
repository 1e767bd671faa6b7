package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	for name, tc := range map[string]struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		"suffix":        {in: "10s", want: 10 * time.Second},
		"minutes":       {in: "5m", want: 5 * time.Minute},
		"bare seconds":  {in: "10", want: 10 * time.Second},
		"quoted":        {in: `"10s"`, want: 10 * time.Second},
		"single quoted": {in: "'30'", want: 30 * time.Second},
		"empty":         {in: "", wantErr: true},
		"garbage":       {in: "soon", wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := parseDuration(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	// t.Setenv registers the restore; unset so the variable is truly absent.
	t.Setenv("PG_DSN", "placeholder")
	os.Unsetenv("PG_DSN")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost:5432/todos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, time.Minute, cfg.HTTP.IdleTimeout.Duration())
	assert.Equal(t, "dev", cfg.App.Env)
}
