package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Mode     string `validate:"oneof=server interactive headless"`
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`

	APIBaseURL         string `validate:"required,url"`
	ChatWSURL          string `validate:"required,url"`
	NotificationsWSURL string `validate:"required,url"`

	Token    string
	UserID   string
	UserName string
	Role     string `validate:"omitempty,oneof=customer admin"`

	DatabasePath string `validate:"required"`
	GRPCAddress  string `validate:"required"`
	MCPAddress   string `validate:"required"`

	HTTPTimeout        time.Duration `validate:"min=0"`
	HeartbeatInterval  time.Duration `validate:"gt=0"`
	ReconnectBaseDelay time.Duration `validate:"gt=0"`
	ReconnectMaxDelay  time.Duration `validate:"gtefield=ReconnectBaseDelay"`
	AdminPollInterval  time.Duration `validate:"gt=0"`
	OutboxSize         int           `validate:"min=0,max=1000"`
}

// Load reads flags with defaults taken from the environment (and a local .env file, if any).
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs parses args; it returns flag.ErrHelp for -h and the flag error for anything unknown.
func LoadArgs(args []string) (*Config, error) {
	_ = godotenv.Load()

	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".storefront-realtime")

	cfg := &Config{}
	fs := flag.NewFlagSet("storefront-realtime", flag.ContinueOnError)

	fs.StringVar(&cfg.Mode, "mode", getEnv("SF_MODE", "server"), "Run mode: server, interactive, or headless")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("SF_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.APIBaseURL, "api", getEnv("SF_API_BASE_URL", "http://localhost:8000"), "Storefront backend base URL")
	fs.StringVar(&cfg.ChatWSURL, "chat-ws", getEnv("SF_CHAT_WS_URL", ""), "Chat WebSocket URL (default derived from -api)")
	fs.StringVar(&cfg.NotificationsWSURL, "notifications-ws", getEnv("SF_NOTIFICATIONS_WS_URL", ""), "Notifications WebSocket URL (default derived from -api)")
	fs.StringVar(&cfg.Token, "token", getEnv("SF_TOKEN", ""), "Bearer token")
	fs.StringVar(&cfg.UserID, "user-id", getEnv("SF_USER_ID", ""), "User id (overrides the token claim)")
	fs.StringVar(&cfg.UserName, "user-name", getEnv("SF_USER_NAME", ""), "Display name (overrides the token claim)")
	fs.StringVar(&cfg.Role, "role", getEnv("SF_ROLE", ""), "Viewer role: customer or admin (overrides the token claim)")
	fs.StringVar(&cfg.DatabasePath, "db", getEnv("SF_DATABASE_PATH", filepath.Join(dataDir, "archive.db")), "Archive database file path")
	fs.StringVar(&cfg.GRPCAddress, "grpc-addr", getEnv("SF_GRPC_ADDRESS", "127.0.0.1:50061"), "gRPC dashboard address")
	fs.StringVar(&cfg.MCPAddress, "mcp-addr", getEnv("SF_MCP_ADDRESS", "127.0.0.1:8090"), "MCP SSE server address")
	fs.DurationVar(&cfg.HTTPTimeout, "http-timeout", getEnvDuration("SF_HTTP_TIMEOUT", 15*time.Second), "REST request timeout")
	fs.DurationVar(&cfg.HeartbeatInterval, "heartbeat", getEnvDuration("SF_HEARTBEAT_INTERVAL", 30*time.Second), "Push channel ping interval")
	fs.DurationVar(&cfg.ReconnectBaseDelay, "reconnect-base", getEnvDuration("SF_RECONNECT_BASE_DELAY", time.Second), "First reconnect delay")
	fs.DurationVar(&cfg.ReconnectMaxDelay, "reconnect-max", getEnvDuration("SF_RECONNECT_MAX_DELAY", 30*time.Second), "Reconnect delay cap")
	fs.DurationVar(&cfg.AdminPollInterval, "admin-poll", getEnvDuration("SF_ADMIN_POLL_INTERVAL", 30*time.Second), "Admin room list poll interval")
	fs.IntVar(&cfg.OutboxSize, "outbox", getEnvInt("SF_OUTBOX_SIZE", 0), "Frames buffered while the push channel is down (0 drops them)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.ChatWSURL == "" {
		cfg.ChatWSURL = deriveWSURL(cfg.APIBaseURL, "/ws/chat")
	}
	if cfg.NotificationsWSURL == "" {
		cfg.NotificationsWSURL = deriveWSURL(cfg.APIBaseURL, "/ws/notifications")
	}

	// Ensure directories exist
	os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755)

	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be smaller than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}

// deriveWSURL maps http(s)://host[/prefix] to ws(s)://host/prefix/<path>.
func deriveWSURL(base, path string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return ""
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
