package order

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mfloresc/orders-grpc/internal/user"
	userpb "github.com/mfloresc/orders-grpc/internal/userpb"
)

// startUserService serves a real user servicer over bufconn and returns a
// stub connected to it.
func startUserService(t *testing.T) (userpb.UserServiceClient, *user.Store) {
	t.Helper()

	store := user.NewStore()
	lis := bufconn.Listen(1024 * 1024)

	srv := grpc.NewServer()
	userpb.RegisterUserServiceServer(srv, user.NewService(store, zap.NewNop()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return userpb.NewUserServiceClient(conn), store
}

func TestLookupFound(t *testing.T) {
	stub, store := startUserService(t)
	created, err := store.Create("John Doe", "john@example.com", "+1234567890")
	require.NoError(t, err)

	c := NewUserClient(stub, time.Second, zap.NewNop())

	u, ok := c.Lookup(context.Background(), created.ID)
	require.True(t, ok)
	require.Equal(t, created.ID, u.GetId())
	require.Equal(t, "John Doe", u.GetName())
}

func TestLookupNotFound(t *testing.T) {
	stub, _ := startUserService(t)

	c := NewUserClient(stub, time.Second, zap.NewNop())

	u, ok := c.Lookup(context.Background(), 404)
	require.False(t, ok)
	require.Nil(t, u)
}

// failingUserClient implements userpb.UserServiceClient and fails every call
// at the transport level.
type failingUserClient struct{}

func (failingUserClient) GetUser(context.Context, *userpb.GetUserRequest, ...grpc.CallOption) (*userpb.GetUserResponse, error) {
	return nil, status.Error(codes.Unavailable, "connection refused")
}
func (failingUserClient) CreateUser(context.Context, *userpb.CreateUserRequest, ...grpc.CallOption) (*userpb.CreateUserResponse, error) {
	return nil, status.Error(codes.Unavailable, "connection refused")
}
func (failingUserClient) GetMultipleUsers(context.Context, *userpb.GetMultipleUsersRequest, ...grpc.CallOption) (*userpb.GetMultipleUsersResponse, error) {
	return nil, status.Error(codes.Unavailable, "connection refused")
}

func TestLookupCollapsesTransportFailureIntoAbsence(t *testing.T) {
	c := NewUserClient(failingUserClient{}, time.Second, zap.NewNop())

	u, ok := c.Lookup(context.Background(), 1)
	require.False(t, ok)
	require.Nil(t, u)
}

// stalledUserClient blocks until the per-call deadline fires.
type stalledUserClient struct{ failingUserClient }

func (stalledUserClient) GetUser(ctx context.Context, _ *userpb.GetUserRequest, _ ...grpc.CallOption) (*userpb.GetUserResponse, error) {
	<-ctx.Done()
	return nil, status.FromContextError(ctx.Err()).Err()
}

func TestLookupBoundedByTimeout(t *testing.T) {
	c := NewUserClient(stalledUserClient{}, 20*time.Millisecond, zap.NewNop())

	start := time.Now()
	_, ok := c.Lookup(context.Background(), 1)
	require.False(t, ok)
	require.Less(t, time.Since(start), time.Second)
}
