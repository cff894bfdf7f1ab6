package grpcx

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ridKey struct{}

// RequestID tags every call with an id, taken from the x-request-id metadata
// when the caller sent one.
func RequestID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-request-id"); len(vals) > 0 {
				rid = vals[0]
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx = context.WithValue(ctx, ridKey{}, rid)
		_ = grpc.SetHeader(ctx, metadata.Pairs("x-request-id", rid))
		return handler(ctx, req)
	}
}

// RequestIDFrom returns the id set by RequestID, if any.
func RequestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(ridKey{}).(string)
	return rid
}

// Logger logs one line per call: method, request id, status code, duration.
func Logger(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Info("rpc",
			zap.String("method", info.FullMethod),
			zap.String("rid", RequestIDFrom(ctx)),
			zap.String("code", status.Code(err).String()),
			zap.Duration("dur", time.Since(start)))
		return resp, err
	}
}

// Limit bounds the number of handlers running at once, like a fixed worker
// pool. Waiters give up when their context is cancelled.
func Limit(n int) grpc.UnaryServerInterceptor {
	sem := make(chan struct{}, n)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return nil, status.FromContextError(ctx.Err()).Err()
		}
		defer func() { <-sem }()
		return handler(ctx, req)
	}
}
