package grpcserver

import (
	"context"
	"strings"
	"time"

	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const authorizationHeader = "authorization"

// LoggingInterceptor логирует каждый unary вызов: метод, код ответа и длительность
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		if code == codes.Internal || code == codes.Unavailable {
			logger.Warn("gRPC request", append(fields, zap.Error(err))...)
		} else {
			logger.Info("gRPC request", fields...)
		}

		return resp, err
	}
}

// AuthInterceptor извлекает пользователя из метаданных authorization.
// Без токена вызов анонимный, недействительный токен отклоняется.
func AuthInterceptor(authService *service.AuthService) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}

		values := md.Get(authorizationHeader)
		if len(values) == 0 || values[0] == "" {
			return handler(ctx, req)
		}

		token := strings.TrimPrefix(values[0], "Bearer ")
		userID, err := authService.ValidateJWT(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(middleware.WithUserID(ctx, userID), req)
	}
}
