package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "ws://localhost:8000/api/v1/ws", cfg.WSURL)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.PollInterval))
	assert.Equal(t, 2*time.Second, time.Duration(cfg.FeedInterval))
}

func TestLoadAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")

	content := `{
		"api_base_url": "http://hospital.example:9000/api/v1",
		"poll_interval": "10s"
	}`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg Config

	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, "http://hospital.example:9000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, time.Duration(cfg.PollInterval))

	// Unset fields still get defaults.
	assert.Equal(t, "ws://localhost:8000/api/v1/ws", cfg.WSURL)
	assert.Equal(t, 2*time.Second, time.Duration(cfg.FeedInterval))
}

func TestLoadFileMissing(t *testing.T) {
	var cfg Config

	err := LoadAndValidate(filepath.Join(t.TempDir(), "missing.json"), &cfg)

	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"2s"`, 2 * time.Second, false},
		{"numeric nanoseconds", `2000000000`, 2 * time.Second, false},
		{"bad string", `"not-a-duration"`, 0, true},
		{"bad type", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDurationMarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}
