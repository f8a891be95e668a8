package grpcserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "shortlink.Shortener"

// Полные имена методов для Invoke и логов
const (
	ShortenMethod = "/" + serviceName + "/Shorten"
	ResolveMethod = "/" + serviceName + "/Resolve"
	PingMethod    = "/" + serviceName + "/Ping"
)

// ShortenerServer серверная часть сервиса shortlink.Shortener.
// Сообщения собраны из well-known типов protobuf:
//   - Shorten: StringValue с URL -> Struct{short_url, already_exists}
//   - Resolve: StringValue с кодом -> StringValue с оригинальным URL
//   - Ping: Empty -> BoolValue
type ShortenerServer interface {
	Shorten(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	Resolve(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Ping(ctx context.Context, req *emptypb.Empty) (*wrapperspb.BoolValue, error)
}

// ShortenerServiceDesc описание сервиса, которое обычно генерирует protoc-gen-go-grpc
var ShortenerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ShortenerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Shorten", Handler: shortenHandler},
		{MethodName: "Resolve", Handler: resolveHandler},
		{MethodName: "Ping", Handler: pingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shortlink",
}

func RegisterShortenerServer(registrar grpc.ServiceRegistrar, srv ShortenerServer) {
	registrar.RegisterService(&ShortenerServiceDesc, srv)
}

// unaryHandler декодирует запрос и вызывает метод сервера через цепочку интерсепторов
func unaryHandler[Req any, Resp any](
	method string,
	call func(ShortenerServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}

		server := srv.(ShortenerServer)
		if interceptor == nil {
			return call(server, ctx, req)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, req, info, handler)
	}
}

var (
	shortenHandler = unaryHandler(ShortenMethod, ShortenerServer.Shorten)
	resolveHandler = unaryHandler(ResolveMethod, ShortenerServer.Resolve)
	pingHandler    = unaryHandler(PingMethod, ShortenerServer.Ping)
)
