package order

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	userpb "github.com/mfloresc/orders-grpc/internal/userpb"
)

// UserDirectory resolves user identities for the order service.
type UserDirectory interface {
	Lookup(ctx context.Context, userID int64) (*userpb.User, bool)
}

// UserClient is the only place a cross-service failure is translated into
// local semantics. Both a delivered "not found" and a transport fault come
// back as plain absence; the transport error is logged here, at the point of
// collapse, since callers cannot tell the two apart.
type UserClient struct {
	client  userpb.UserServiceClient
	timeout time.Duration
	log     *zap.Logger
}

// DialUserService opens the persistent client connection to the user
// service. The connection is non-blocking; RPCs fail individually if the
// target is down.
func DialUserService(target string) (*grpc.ClientConn, error) {
	return grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func NewUserClient(client userpb.UserServiceClient, timeout time.Duration, log *zap.Logger) *UserClient {
	return &UserClient{client: client, timeout: timeout, log: log}
}

// Lookup performs one GetUser call, no retries.
func (c *UserClient) Lookup(ctx context.Context, userID int64) (*userpb.User, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.GetUser(ctx, &userpb.GetUserRequest{UserId: userID})
	if err != nil {
		c.log.Error("user service call failed, treating user as absent",
			zap.Int64("user_id", userID), zap.Error(err))
		return nil, false
	}
	if !resp.GetSuccess() {
		c.log.Warn("user not found", zap.Int64("user_id", userID),
			zap.String("message", resp.GetMessage()))
		return nil, false
	}
	return resp.GetUser(), true
}
