package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pb "github.com/mfloresc/orders-grpc/internal/userpb"
)

func newTestService() *Service {
	return NewService(NewStore(), zap.NewNop())
}

func TestGetUserAbsentIsInBandFailure(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetUser(context.Background(), &pb.GetUserRequest{UserId: 42})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "User with ID 42 not found", resp.GetMessage())
	require.Nil(t, resp.GetUser())
}

func TestCreateUserThenGetUser(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(context.Background(), &pb.CreateUserRequest{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		Phone: "+1555123456",
	})
	require.NoError(t, err)
	require.True(t, created.GetSuccess())
	require.Equal(t, "User created successfully", created.GetMessage())
	require.Equal(t, int64(1), created.GetUser().GetId())
	require.NotZero(t, created.GetUser().GetCreatedAt())

	got, err := svc.GetUser(context.Background(), &pb.GetUserRequest{UserId: 1})
	require.NoError(t, err)
	require.True(t, got.GetSuccess())
	require.Equal(t, created.GetUser().GetName(), got.GetUser().GetName())
	require.Equal(t, created.GetUser().GetEmail(), got.GetUser().GetEmail())
	require.Equal(t, created.GetUser().GetCreatedAt(), got.GetUser().GetCreatedAt())
}

func TestCreateUserRejections(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CreateUser(context.Background(), &pb.CreateUserRequest{Name: "No Email"})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "Name and email are required", resp.GetMessage())

	_, err = svc.CreateUser(context.Background(), &pb.CreateUserRequest{
		Name: "First", Email: "dup@example.com",
	})
	require.NoError(t, err)

	resp, err = svc.CreateUser(context.Background(), &pb.CreateUserRequest{
		Name: "Second", Email: "dup@example.com",
	})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "Email already exists", resp.GetMessage())
}

func TestGetMultipleUsersAllFound(t *testing.T) {
	svc := newTestService()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.CreateUser(context.Background(), &pb.CreateUserRequest{Name: "U", Email: email})
		require.NoError(t, err)
	}

	resp, err := svc.GetMultipleUsers(context.Background(), &pb.GetMultipleUsersRequest{UserIds: []int64{1, 2}})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	require.Equal(t, "All 2 users found successfully", resp.GetMessage())
	require.Len(t, resp.GetUsers(), 2)
}

func TestGetMultipleUsersPartialIsStillSuccess(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateUser(context.Background(), &pb.CreateUserRequest{Name: "U", Email: "a@example.com"})
	require.NoError(t, err)

	resp, err := svc.GetMultipleUsers(context.Background(), &pb.GetMultipleUsersRequest{UserIds: []int64{1, 8, 9}})
	require.NoError(t, err)

	// batch lookups never fail structurally; callers must diff the lists
	require.True(t, resp.GetSuccess())
	require.Equal(t, "Users found: 1, Not found IDs: [8 9]", resp.GetMessage())
	require.Len(t, resp.GetUsers(), 1)
}
