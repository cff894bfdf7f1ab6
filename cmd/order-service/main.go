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
	"google.golang.org/grpc/connectivity"

	"github.com/mfloresc/orders-grpc/internal/config"
	"github.com/mfloresc/orders-grpc/internal/grpcx"
	"github.com/mfloresc/orders-grpc/internal/httpx"
	"github.com/mfloresc/orders-grpc/internal/order"
	orderpb "github.com/mfloresc/orders-grpc/internal/orderpb"
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

	conn, err := order.DialUserService(cfg.UserSvcTarget)
	if err != nil {
		sugar.Fatalw("user service dial error", "target", cfg.UserSvcTarget, "error", err)
	}
	defer conn.Close()

	users := order.NewUserClient(userpb.NewUserServiceClient(conn), cfg.UserCallTimeout, logger)
	store := order.NewStore()

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcx.RequestID(),
		grpcx.Logger(logger),
		grpcx.Limit(cfg.MaxConcurrent),
	))
	orderpb.RegisterOrderServiceServer(srv, order.NewService(store, users, logger))

	lis, err := net.Listen("tcp", cfg.OrderSvcAddr)
	if err != nil {
		sugar.Fatalw("listen error", "addr", cfg.OrderSvcAddr, "error", err)
	}

	ready := func() bool {
		s := conn.GetState()
		return s == connectivity.Ready || s == connectivity.Idle
	}
	ops := &http.Server{
		Addr:    cfg.OrderHTTPAddr,
		Handler: httpx.NewRouter("order-service", logger, ready),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("order service starting",
			"addr", cfg.OrderSvcAddr, "user_service", cfg.UserSvcTarget)
		return srv.Serve(lis)
	})

	g.Go(func() error {
		sugar.Infow("ops server starting", "addr", cfg.OrderHTTPAddr)
		if err := ops.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down order service...")

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
		sugar.Fatalw("order service terminated with error", "error", err)
	}
	sugar.Info("order service stopped")
}
