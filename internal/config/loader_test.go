package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	require.Equal(t, "primelaser", cfg.Database.Name)
	require.Equal(t, 5000, cfg.Server.Port)
	require.Equal(t, "development", cfg.Env)
	require.False(t, cfg.IsProduction())
	require.Equal(t, 10*time.Second, cfg.Database.RetryInitial)
	require.Equal(t, 5*time.Second, cfg.Database.RetryReconnect)
	require.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	require.Equal(t, 45*time.Second, cfg.Database.SocketTimeout)
	require.Equal(t, 8760*time.Hour, cfg.Database.Retention)
	require.False(t, cfg.Email.Enabled())
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	// t.Setenv cannot unset; restore manually after clearing the variable.
	old, had := os.LookupEnv("MONGO_URI")
	require.NoError(t, os.Unsetenv("MONGO_URI"))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv("MONGO_URI", old)
		}
	})

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("EMAIL_USER", "ops@example.com")
	t.Setenv("EMAIL_PASS", "hunter2")
	t.Setenv("DEBUG_TOKEN", "tok")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8081, cfg.Server.Port)
	require.True(t, cfg.IsProduction())
	require.True(t, cfg.Email.Enabled())
	require.Equal(t, "tok", cfg.Debug.Token)
}

func TestEmailConfig_Recipient(t *testing.T) {
	c := EmailConfig{User: "ops@example.com"}
	require.Equal(t, "ops@example.com", c.Recipient())

	c.To = "inbox@example.com"
	require.Equal(t, "inbox@example.com", c.Recipient())
}

func TestEmailConfig_Enabled(t *testing.T) {
	require.False(t, EmailConfig{User: "u"}.Enabled())
	require.False(t, EmailConfig{Pass: "p"}.Enabled())
	require.True(t, EmailConfig{User: "u", Pass: "p"}.Enabled())
}
