package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clippy-oss/homie/storefront-realtime/internal/api"
	"github.com/clippy-oss/homie/storefront-realtime/internal/auth"
	"github.com/clippy-oss/homie/storefront-realtime/internal/cli"
	"github.com/clippy-oss/homie/storefront-realtime/internal/config"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/logger"
	"github.com/clippy-oss/homie/storefront-realtime/internal/realtime"
	"github.com/clippy-oss/homie/storefront-realtime/internal/repository"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	"github.com/clippy-oss/homie/storefront-realtime/internal/store"
	grpcTransport "github.com/clippy-oss/homie/storefront-realtime/internal/transport/grpc"
	mcpTransport "github.com/clippy-oss/homie/storefront-realtime/internal/transport/mcp"
)

// RunMode defines how the application runs
type RunMode string

const (
	RunModeServer      RunMode = "server"
	RunModeInteractive RunMode = "interactive"
	RunModeHeadless    RunMode = "headless"
)

type app struct {
	cfg      *config.Config
	session  *service.SessionService
	chat     *service.ChatService
	notes    *service.NotificationService
	archiver *service.Archiver
}

func main() {
	cfg, err := config.Load()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// stdout carries the ready line and the headless protocol; logs go to stderr
	level := cfg.LogLevel
	if RunMode(cfg.Mode) == RunModeInteractive && level == "info" {
		level = "error"
	}
	logger.InitWithWriter(level, os.Stderr)
	log := logger.Module("main")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := initDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	a := newApp(cfg, db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.archiver.Start(ctx)
	defer a.archiver.Stop()

	if cfg.Token != "" {
		viewer, err := auth.Resolve(cfg.Token, cfg.UserID, cfg.UserName, cfg.Role)
		if err != nil {
			log.Error().Err(err).Msg("configured credentials rejected")
		} else if err := a.session.Start(ctx, viewer); err != nil {
			// the session keeps running; stores retry on the next push or refresh
			log.Warn().Err(err).Str("user_id", viewer.UserID).Msg("initial load failed")
		}
	}

	switch RunMode(cfg.Mode) {
	case RunModeInteractive:
		a.runCLI(ctx, cli.ModeInteractive)
	case RunModeHeadless:
		a.runCLI(ctx, cli.ModeHeadless)
	default:
		a.runServer()
	}

	a.session.Stop()
}

func newApp(cfg *config.Config, db *gorm.DB) *app {
	msgRepo := repository.NewMessageRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	noteRepo := repository.NewNotificationRepository(db)

	eventBus := domain.NewEventBusWithBuffer(256)

	newAPI := func(viewer domain.AuthContext) (store.ChatAPI, store.NotificationAPI) {
		client := api.NewClient(api.ClientConfig{
			BaseURL: cfg.APIBaseURL,
			Token:   viewer.Token,
			Timeout: cfg.HTTPTimeout,
		}, logger.Module("api"))
		return client, client
	}

	urls := map[string]string{
		service.ChannelChat:          cfg.ChatWSURL,
		service.ChannelNotifications: cfg.NotificationsWSURL,
	}
	newTransport := func(channel string) service.Transport {
		return realtime.NewSession(realtime.Config{
			Name:               channel,
			URL:                urls[channel],
			HeartbeatInterval:  cfg.HeartbeatInterval,
			ReconnectBaseDelay: cfg.ReconnectBaseDelay,
			ReconnectMaxDelay:  cfg.ReconnectMaxDelay,
			OutboxSize:         cfg.OutboxSize,
		}, logger.Module("realtime"))
	}

	session := service.NewSessionService(
		service.SessionServiceConfig{AdminPollInterval: cfg.AdminPollInterval},
		newAPI,
		newTransport,
		eventBus,
		logger.Module("session"),
	)

	return &app{
		cfg:      cfg,
		session:  session,
		chat:     service.NewChatService(session, msgRepo, roomRepo),
		notes:    service.NewNotificationService(session, noteRepo),
		archiver: service.NewArchiver(eventBus, msgRepo, roomRepo, noteRepo, logger.Module("archiver")),
	}
}

func (a *app) runServer() {
	log := logger.Module("main")
	log.Info().
		Str("database", a.cfg.DatabasePath).
		Str("grpc_address", a.cfg.GRPCAddress).
		Str("mcp_address", a.cfg.MCPAddress).
		Msg("storefront realtime starting")

	grpcServer := grpcTransport.NewServer(
		a.session,
		a.chat,
		a.notes,
		grpcTransport.ServerConfig{Address: a.cfg.GRPCAddress},
		logger.Module("grpc"),
	)

	mcpServer := mcpTransport.NewServer(
		a.session,
		a.chat,
		a.notes,
		mcpTransport.ServerConfig{Address: a.cfg.MCPAddress},
		logger.Module("mcp"),
	)

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		if err := mcpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	if _, ok := a.session.Auth(); !ok {
		log.Info().Msg("no credentials configured; waiting for a login")
	}

	// Print ready message for subprocess coordination
	fmt.Println("ready")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	grpcServer.Stop()
	if err := mcpServer.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("mcp server stop")
	}

	log.Info().Msg("shutdown complete")
}

func (a *app) runCLI(ctx context.Context, mode cli.Mode) {
	handler := cli.NewCommandHandler(a.session, a.chat, a.notes)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	var err error
	if mode == cli.ModeHeadless {
		err = cli.NewHeadlessCLI(handler, os.Stdin, os.Stdout).Run(ctx)
	} else {
		err = cli.NewInteractiveCLI(handler, os.Stdin, os.Stdout).Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log := logger.Module("main")
		log.Error().Err(err).Msg("cli error")
	}
}

func initDatabase(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.NewGormLogger("gorm"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	db.Exec("PRAGMA journal_mode=WAL")

	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
