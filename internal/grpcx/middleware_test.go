package grpcx

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

var noopInfo = &grpc.UnaryServerInfo{FullMethod: "/test.Service/Method"}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	var got string
	handler := func(ctx context.Context, req any) (any, error) {
		got = RequestIDFrom(ctx)
		return nil, nil
	}

	_, err := RequestID()(context.Background(), nil, noopInfo, handler)
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestRequestIDPropagatedFromMetadata(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("x-request-id", "rid-123"))

	var got string
	handler := func(ctx context.Context, req any) (any, error) {
		got = RequestIDFrom(ctx)
		return nil, nil
	}

	_, err := RequestID()(ctx, nil, noopInfo, handler)
	require.NoError(t, err)
	require.Equal(t, "rid-123", got)
}

func TestLimitBoundsConcurrentHandlers(t *testing.T) {
	const bound = 3

	limit := Limit(bound)

	var running, peak int64
	handler := func(ctx context.Context, req any) (any, error) {
		n := atomic.AddInt64(&running, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt64(&running, -1)
		return nil, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = limit(context.Background(), nil, noopInfo, handler)
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, atomic.LoadInt64(&peak), int64(bound))
}

func TestLimitGivesUpOnCancelledContext(t *testing.T) {
	limit := Limit(1)

	release := make(chan struct{})
	blocked := func(ctx context.Context, req any) (any, error) {
		<-release
		return nil, nil
	}

	go func() { _, _ = limit(context.Background(), nil, noopInfo, blocked) }()
	time.Sleep(10 * time.Millisecond) // let the first call take the slot

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := limit(ctx, nil, noopInfo, blocked)
	require.Error(t, err)

	close(release)
}
