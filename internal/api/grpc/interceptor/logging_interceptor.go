package interceptor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"mountainride-backend/internal/logger"
)

const requestIDKey = "x-request-id"

type LoggingInterceptor struct {
	newID func() string
}

func NewLoggingInterceptor() *LoggingInterceptor {
	return &LoggingInterceptor{newID: uuid.NewString}
}

// Unary tags each RPC with a request id, taken from the caller's metadata
// when present, and logs its outcome.
func (i *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := i.requestID(ctx)
		ctx = logger.WithRequestID(ctx, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		if err != nil {
			logger.WarnContext(ctx, "gRPC call failed", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start), "error", err)
		} else {
			logger.DebugContext(ctx, "gRPC call", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start))
		}
		return resp, err
	}
}

func (i *LoggingInterceptor) requestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if ids := md.Get(requestIDKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return i.newID()
}
