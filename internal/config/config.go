package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Email    EmailConfig    `yaml:"email"`
	Debug    DebugConfig    `yaml:"debug"`

	// Env gates production-only behavior: the debug token requirement on
	// the listing endpoint and the suppression of raw error details.
	Env string `yaml:"env" env:"APP_ENV" env-default:"development"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"HOST"                    env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	CORSOrigin      string        `yaml:"cors_origin"      env:"CORS_ORIGIN"             env-default:"*"`
}

// DatabaseConfig holds document-store connection settings.
// RetryInitial is the delay after a failed connection attempt;
// RetryReconnect is the (shorter) delay after an established connection drops.
type DatabaseConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"           env-required:"true"`
	Name           string        `yaml:"name"            env:"MONGO_DB"            env-default:"primelaser"`
	RetryInitial   time.Duration `yaml:"retry_initial"   env:"DB_RETRY_INITIAL"    env-default:"10s"`
	RetryReconnect time.Duration `yaml:"retry_reconnect" env:"DB_RETRY_RECONNECT"  env-default:"5s"`
	PingInterval   time.Duration `yaml:"ping_interval"   env:"DB_PING_INTERVAL"    env-default:"10s"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"  env-default:"5s"`
	SocketTimeout  time.Duration `yaml:"socket_timeout"  env:"DB_SOCKET_TIMEOUT"   env-default:"45s"`
	OpTimeout      time.Duration `yaml:"op_timeout"      env:"DB_OP_TIMEOUT"       env-default:"5s"`
	Retention      time.Duration `yaml:"retention"       env:"CONTACT_RETENTION"   env-default:"8760h"`
}

// EmailConfig holds SMTP relay settings. User and Pass are optional:
// when either is empty the notifier is disabled for the whole process.
type EmailConfig struct {
	User     string        `yaml:"user"      env:"EMAIL_USER"`
	Pass     string        `yaml:"pass"      env:"EMAIL_PASS"`
	To       string        `yaml:"to"        env:"EMAIL_TO"`
	SMTPHost string        `yaml:"smtp_host" env:"SMTP_HOST"    env-default:"smtp.gmail.com"`
	SMTPPort int           `yaml:"smtp_port" env:"SMTP_PORT"    env-default:"587"`
	Timeout  time.Duration `yaml:"timeout"   env:"SMTP_TIMEOUT" env-default:"10s"`
}

// DebugConfig holds the shared-secret token gating the listing endpoint.
type DebugConfig struct {
	Token string `yaml:"token" env:"DEBUG_TOKEN"`
}

// Enabled reports whether mail credentials are configured.
func (c EmailConfig) Enabled() bool {
	return c.User != "" && c.Pass != ""
}

// Recipient returns the notification target, falling back to the
// authenticated sender when EMAIL_TO is not set.
func (c EmailConfig) Recipient() string {
	if c.To != "" {
		return c.To
	}
	return c.User
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
