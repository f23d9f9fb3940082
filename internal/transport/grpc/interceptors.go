package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clippy-oss/homie/storefront-realtime/internal/metrics"
)

func LoggingInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		evt := log.Debug()
		if code != codes.OK {
			evt = log.Warn().Err(err)
		}
		evt.Str("method", info.FullMethod).Str("code", code.String()).Dur("duration", time.Since(start)).Msg("grpc call")
		metrics.AdapterRequests.WithLabelValues("grpc", info.FullMethod, code.String()).Inc()
		return resp, err
	}
}

func RecoveryInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("method", info.FullMethod).Interface("panic", r).Bytes("stack", debug.Stack()).Msg("panic recovered")
				err = status.Errorf(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

func StreamLoggingInterceptor(log zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		log.Debug().Str("method", info.FullMethod).Msg("grpc stream opened")
		err := handler(srv, ss)

		code := status.Code(err)
		log.Info().Str("method", info.FullMethod).Str("code", code.String()).Dur("duration", time.Since(start)).Msg("grpc stream closed")
		metrics.AdapterRequests.WithLabelValues("grpc", info.FullMethod, code.String()).Inc()
		return err
	}
}

func StreamRecoveryInterceptor(log zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("method", info.FullMethod).Interface("panic", r).Bytes("stack", debug.Stack()).Msg("panic recovered in stream")
				err = status.Errorf(codes.Internal, "internal server error")
			}
		}()
		return handler(srv, ss)
	}
}
