package grpcserver

import (
	"context"
	"errors"

	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// URLUsecase бизнес-логика, доступная через gRPC
type URLUsecase interface {
	CreateShortURLFromString(ctx context.Context, urlString string, userID string) (string, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	Ping(ctx context.Context) error
}

// Server реализует ShortenerServer поверх того же usecase, что и HTTP обработчики
type Server struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает gRPC сервер с логированием и аутентификацией по JWT
func New(uc URLUsecase, authService *service.AuthService, logger *zap.Logger) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(logger),
			AuthInterceptor(authService),
		),
	)

	RegisterShortenerServer(server, &Server{usecase: uc, logger: logger})
	return server
}

func (s *Server) Shorten(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	shortURL, err := s.usecase.CreateShortURLFromString(ctx, req.GetValue(), userID)
	if err != nil {
		var urlExistsErr usecase.URLAlreadyExistsError
		if errors.As(err, &urlExistsErr) {
			return newShortenResponse(urlExistsErr.ExistingURL(), true), nil
		}
		return nil, s.toStatus(err)
	}

	return newShortenResponse(shortURL, false), nil
}

func (s *Server) Resolve(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	code := req.GetValue()
	if code == "" {
		return nil, status.Error(codes.InvalidArgument, "code must not be empty")
	}

	originalURL, err := s.usecase.GetOriginalURL(ctx, code)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return wrapperspb.String(originalURL), nil
}

func (s *Server) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	if err := s.usecase.Ping(ctx); err != nil {
		s.logger.Error("storage ping failed", zap.Error(err))
		return nil, status.Error(codes.Unavailable, "storage is unavailable")
	}
	return wrapperspb.Bool(true), nil
}

// toStatus переводит ошибки бизнес-логики в gRPC коды
func (s *Server) toStatus(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL), errors.Is(err, usecase.ErrInvalidURL):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrURLNotFound):
		return status.Error(codes.NotFound, "short URL not found")
	case errors.Is(err, usecase.ErrURLDeleted):
		return status.Error(codes.FailedPrecondition, "short URL is deleted")
	default:
		s.logger.Error("internal error", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}
