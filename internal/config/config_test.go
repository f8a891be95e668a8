package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromArgs_Defaults(t *testing.T) {
	cfg, err := LoadFromArgs(nil)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress.String())
	assert.Equal(t, "localhost:3200", cfg.GRPCAddress.String())
	assert.Equal(t, "http://localhost:8080/", cfg.BaseURL.String())
	assert.Equal(t, 8, cfg.Code.Length)
	assert.Equal(t, "random", cfg.Code.Strategy)
	assert.Equal(t, 10, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.FileStoragePath)
}

func TestLoadFromArgs_Flags(t *testing.T) {
	cfg, err := LoadFromArgs([]string{
		"-a", "0.0.0.0:9090",
		"-b", "https://sho.rt",
		"-f", "/tmp/links.json",
		"-d", "postgres://localhost/db",
		"-g", ":3300",
		"-r", "localhost:6379",
		"-l", "debug",
	})

	require.NoError(t, err)
	assert.Equal(t, NetworkAddress{Host: "0.0.0.0", Port: 9090}, cfg.ServerAddress)
	assert.Equal(t, URLPrefix("https://sho.rt/"), cfg.BaseURL)
	assert.Equal(t, "/tmp/links.json", cfg.FileStoragePath)
	assert.Equal(t, "postgres://localhost/db", cfg.DatabaseDSN)
	assert.Equal(t, 3300, cfg.GRPCAddress.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromArgs_EnvOverridesFlags(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")
	t.Setenv("BASE_URL", "http://env.example/")
	t.Setenv("CODE_STRATEGY", "shortuuid")
	t.Setenv("WORKER_JOB_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadFromArgs([]string{"-a", "0.0.0.0:9090", "-b", "http://flag.example"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.ServerAddress.String())
	assert.Equal(t, "http://env.example/", cfg.BaseURL.String())
	assert.Equal(t, "shortuuid", cfg.Code.Strategy)
	assert.Equal(t, 3*time.Second, cfg.Worker.JobTimeout)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadFromArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad address flag", args: []string{"-a", "nope"}},
		{name: "bad base URL flag", args: []string{"-b", "ftp://x"}},
		{name: "unknown flag", args: []string{"-z"}},
		{name: "bad log level", args: []string{"-l", "loud"}},
		{name: "bad strategy", env: map[string]string{"CODE_STRATEGY": "sha"}},
		{name: "zero retries", env: map[string]string{"RETRY_MAX_ATTEMPTS": "0"}},
		{name: "bad duration", env: map[string]string{"CACHE_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := LoadFromArgs(tt.args)

			assert.Error(t, err)
		})
	}
}

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    NetworkAddress
		wantErr bool
	}{
		{value: "localhost:8080", want: NetworkAddress{Host: "localhost", Port: 8080}},
		{value: ":80", want: NetworkAddress{Port: 80}},
		{value: "[::1]:443", want: NetworkAddress{Host: "::1", Port: 443}},
		{value: "localhost", wantErr: true},
		{value: "localhost:http", wantErr: true},
		{value: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var addr NetworkAddress
			err := addr.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestURLPrefix_Set(t *testing.T) {
	var prefix URLPrefix

	require.NoError(t, prefix.Set("http://localhost:8080"))
	assert.Equal(t, "http://localhost:8080/", prefix.String())

	require.NoError(t, prefix.Set("https://sho.rt/x/"))
	assert.Equal(t, "https://sho.rt/x/", prefix.String())

	assert.Error(t, prefix.Set("localhost:8080"))
	assert.Error(t, prefix.Set("http://"))
}
