package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "downloads", cfg.DownloadDir)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cli", "-a", "evidence.local:9090", "-t", "5", "-o", "/tmp/out"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "evidence.local:9090", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/out", cfg.DownloadDir)
}

func TestParseJson_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"server_endpoint_addr": "10.0.0.5:50051", "request_timeout": "7s", "download_dir": "evidence"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	os.Args = []string{"cli", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "10.0.0.5:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "evidence", cfg.DownloadDir)
}
