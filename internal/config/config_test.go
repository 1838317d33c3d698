package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config from file", func(t *testing.T) {
		path := writeConfigFile(t, `
[logs]
level = "debug"
file = "./logs/test.log"

[server]
http_port = 9090
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 3

[metrics]
enabled = true
path = "/metrics"
service_name = "orderbot-test"

[telegram]
bot_token = "123456:file-token"

[webapp]
url = "https://webapp.example.com"
`)

		cfg, err := Load(path, nil)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logs.Level)
		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "orderbot-test", cfg.Metrics.ServiceName)
		assert.Equal(t, "123456:file-token", cfg.Telegram.BotToken)
		assert.Equal(t, "https://webapp.example.com", cfg.WebApp.URL)
	})

	t.Run("missing file works with cli args", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), []string{"123456:cli-token", "https://cli.example.com"})
		require.NoError(t, err)

		assert.Equal(t, "123456:cli-token", cfg.Telegram.BotToken)
		assert.Equal(t, "https://cli.example.com", cfg.WebApp.URL)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), []string{"123456:token"})
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, 15, cfg.Server.ReadTimeout)
		assert.Equal(t, 15, cfg.Server.WriteTimeout)
		assert.Equal(t, 60, cfg.Server.IdleTimeout)
		assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Logs.Level)
		assert.Equal(t, "./logs/app.log", cfg.Logs.File)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "webapporderbot", cfg.Metrics.ServiceName)
		assert.Empty(t, cfg.WebApp.URL)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfigFile(t, `
[telegram]
bot_token = "123456:file-token"

[webapp]
url = "https://file.example.com"
`)

		t.Setenv("TELEGRAM_BOT_TOKEN", "123456:env-token")
		t.Setenv("WEBAPP_URL", "https://env.example.com")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("HTTP_PORT", "7070")

		cfg, err := Load(path, nil)
		require.NoError(t, err)

		assert.Equal(t, "123456:env-token", cfg.Telegram.BotToken)
		assert.Equal(t, "https://env.example.com", cfg.WebApp.URL)
		assert.Equal(t, "warn", cfg.Logs.Level)
		assert.Equal(t, 7070, cfg.Server.HTTPPort)
	})

	t.Run("cli args override env", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "123456:env-token")
		t.Setenv("WEBAPP_URL", "https://env.example.com")

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), []string{"123456:cli-token", "https://cli.example.com"})
		require.NoError(t, err)

		assert.Equal(t, "123456:cli-token", cfg.Telegram.BotToken)
		assert.Equal(t, "https://cli.example.com", cfg.WebApp.URL)
	})

	t.Run("missing bot token", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telegram bot token is required")
	})

	t.Run("invalid port", func(t *testing.T) {
		path := writeConfigFile(t, `
[server]
http_port = 70000

[telegram]
bot_token = "123456:token"
`)

		_, err := Load(path, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP port")
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfigFile(t, "[telegram\nbot_token=")

		_, err := Load(path, nil)
		require.Error(t, err)
	})
}
