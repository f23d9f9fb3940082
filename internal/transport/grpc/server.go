package grpc

import (
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	pb "github.com/clippy-oss/homie/storefront-realtime/pkg/pb"
)

type ServerConfig struct {
	Address string
}

type Server struct {
	server  *grpc.Server
	handler *Handler
	config  ServerConfig
	log     zerolog.Logger
}

func NewServer(
	session *service.SessionService,
	chat *service.ChatService,
	notes *service.NotificationService,
	config ServerConfig,
	log zerolog.Logger,
) *Server {
	handler := NewHandler(session, chat, notes)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(log),
			RecoveryInterceptor(log),
		),
		grpc.ChainStreamInterceptor(
			StreamLoggingInterceptor(log),
			StreamRecoveryInterceptor(log),
		),
	)

	pb.RegisterDashboardServiceServer(server, handler)
	reflection.Register(server)

	return &Server{
		server:  server,
		handler: handler,
		config:  config,
		log:     log,
	}
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info().Str("address", lis.Addr().String()).Msg("grpc dashboard listening")
	return s.server.Serve(lis)
}

func (s *Server) Stop() {
	s.server.GracefulStop()
}
