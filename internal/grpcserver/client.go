package grpcserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client клиент сервиса shortlink.Shortener поверх готового соединения
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// WithToken добавляет JWT пользователя в исходящие метаданные
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, authorizationHeader, "Bearer "+token)
}

func (c *Client) Shorten(ctx context.Context, originalURL string) (ShortenResult, error) {
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ShortenMethod, wrapperspb.String(originalURL), resp); err != nil {
		return ShortenResult{}, err
	}
	return parseShortenResponse(resp), nil
}

func (c *Client) Resolve(ctx context.Context, code string) (string, error) {
	resp := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(ctx, ResolveMethod, wrapperspb.String(code), resp); err != nil {
		return "", err
	}
	return resp.GetValue(), nil
}

func (c *Client) Ping(ctx context.Context) (bool, error) {
	resp := new(wrapperspb.BoolValue)
	if err := c.conn.Invoke(ctx, PingMethod, &emptypb.Empty{}, resp); err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}
