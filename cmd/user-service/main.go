package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/mfloresc/orders-grpc/internal/config"
	"github.com/mfloresc/orders-grpc/internal/grpcx"
	"github.com/mfloresc/orders-grpc/internal/httpx"
	"github.com/mfloresc/orders-grpc/internal/user"
	userpb "github.com/mfloresc/orders-grpc/internal/userpb"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err)
	}

	store := user.NewStore()
	seedDemoUsers(store, sugar)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcx.RequestID(),
		grpcx.Logger(logger),
		grpcx.Limit(cfg.MaxConcurrent),
	))
	userpb.RegisterUserServiceServer(srv, user.NewService(store, logger))

	lis, err := net.Listen("tcp", cfg.UserSvcAddr)
	if err != nil {
		sugar.Fatalw("listen error", "addr", cfg.UserSvcAddr, "error", err)
	}

	ops := &http.Server{
		Addr:    cfg.UserHTTPAddr,
		Handler: httpx.NewRouter("user-service", logger, nil),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("user service starting", "addr", cfg.UserSvcAddr)
		return srv.Serve(lis)
	})

	g.Go(func() error {
		sugar.Infow("ops server starting", "addr", cfg.UserHTTPAddr)
		if err := ops.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down user service...")

		done := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(cfg.ShutdownGrace):
			srv.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		return ops.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("user service terminated with error", "error", err)
	}
	sugar.Info("user service stopped")
}

// seedDemoUsers loads the two well-known directory entries so the order
// service has users 1 and 2 to work with out of the box.
func seedDemoUsers(store *user.Store, sugar *zap.SugaredLogger) {
	seeds := []struct{ name, email, phone string }{
		{"John Doe", "john@example.com", "+1234567890"},
		{"Jane Smith", "jane@example.com", "+1987654321"},
	}
	for _, s := range seeds {
		u, err := store.Create(s.name, s.email, s.phone)
		if err != nil {
			sugar.Warnw("seed user skipped", "email", s.email, "error", err)
			continue
		}
		sugar.Infow("seeded user", "user_id", u.ID, "email", u.Email)
	}
}
