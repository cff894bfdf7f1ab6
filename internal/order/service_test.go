package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pb "github.com/mfloresc/orders-grpc/internal/orderpb"
	userpb "github.com/mfloresc/orders-grpc/internal/userpb"
)

// fakeDirectory implements UserDirectory in memory.
type fakeDirectory struct {
	users   map[int64]*userpb.User
	lookups int
}

func (f *fakeDirectory) Lookup(ctx context.Context, userID int64) (*userpb.User, bool) {
	f.lookups++
	u, ok := f.users[userID]
	return u, ok
}

func johnDoe() *userpb.User {
	return &userpb.User{Id: 1, Name: "John Doe", Email: "john@example.com", Phone: "+1234567890", CreatedAt: 1700000000}
}

func newTestService(users map[int64]*userpb.User) (*Service, *Store, *fakeDirectory) {
	store := NewStore()
	dir := &fakeDirectory{users: users}
	return NewService(store, dir, zap.NewNop()), store, dir
}

func TestCreateOrderComposesOrderWithUser(t *testing.T) {
	svc, _, _ := newTestService(map[int64]*userpb.User{1: johnDoe()})

	resp, err := svc.CreateOrder(context.Background(), &pb.CreateOrderRequest{
		UserId: 1,
		Items: []*pb.OrderItem{
			{ProductName: "Laptop", Quantity: 1, Price: 999.99},
			{ProductName: "Mouse", Quantity: 2, Price: 25.50},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	require.Equal(t, "Order created successfully", resp.GetMessage())

	o := resp.GetOrder().GetOrder()
	require.Equal(t, int64(1), o.GetId())
	require.Equal(t, int64(1), o.GetUserId())
	require.Equal(t, 1050.99, o.GetTotalAmount())
	require.Equal(t, StatusPending, o.GetStatus())
	require.Len(t, o.GetItems(), 2)

	// the already-resolved user is embedded; no second lookup happened
	require.Equal(t, "John Doe", resp.GetOrder().GetUser().GetName())
}

func TestCreateOrderUnknownUserLeavesStoreUntouched(t *testing.T) {
	svc, store, _ := newTestService(nil)

	resp, err := svc.CreateOrder(context.Background(), &pb.CreateOrderRequest{
		UserId: 999,
		Items:  []*pb.OrderItem{{ProductName: "Test", Quantity: 1, Price: 10.00}},
	})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "User with ID 999 not found", resp.GetMessage())
	require.Equal(t, 0, store.Len())
}

func TestCreateOrderEmptyItems(t *testing.T) {
	svc, store, _ := newTestService(map[int64]*userpb.User{1: johnDoe()})

	resp, err := svc.CreateOrder(context.Background(), &pb.CreateOrderRequest{UserId: 1})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "Order must contain at least one item", resp.GetMessage())
	require.Equal(t, 0, store.Len())
}

func TestCreateOrderUserCheckedBeforeItems(t *testing.T) {
	svc, _, _ := newTestService(nil)

	// both invalid: the user error wins
	resp, err := svc.CreateOrder(context.Background(), &pb.CreateOrderRequest{UserId: 5})
	require.NoError(t, err)
	require.Equal(t, "User with ID 5 not found", resp.GetMessage())
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _, _ := newTestService(nil)

	resp, err := svc.GetOrder(context.Background(), &pb.GetOrderRequest{OrderId: 3})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "Order with ID 3 not found", resp.GetMessage())
}

func TestGetOrderSuccess(t *testing.T) {
	svc, store, _ := newTestService(map[int64]*userpb.User{1: johnDoe()})

	created, err := store.Create(1, []Item{{ProductName: "Pen", Quantity: 4, Price: 1.25}})
	require.NoError(t, err)

	resp, err := svc.GetOrder(context.Background(), &pb.GetOrderRequest{OrderId: created.ID})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	require.Equal(t, "Order found successfully", resp.GetMessage())
	require.Equal(t, 5.0, resp.GetOrder().GetOrder().GetTotalAmount())
	require.Equal(t, int64(1), resp.GetOrder().GetUser().GetId())
}

func TestGetOrderOwnerMissingFromDirectory(t *testing.T) {
	svc, store, _ := newTestService(nil)

	created, err := store.Create(8, []Item{{ProductName: "Pen", Quantity: 1, Price: 1}})
	require.NoError(t, err)

	resp, err := svc.GetOrder(context.Background(), &pb.GetOrderRequest{OrderId: created.ID})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "User associated with order not found", resp.GetMessage())
}

func TestGetUserOrdersEmptyListIsSuccess(t *testing.T) {
	svc, _, _ := newTestService(map[int64]*userpb.User{1: johnDoe()})

	resp, err := svc.GetUserOrders(context.Background(), &pb.GetUserOrdersRequest{UserId: 1})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	require.Equal(t, "Found 0 orders for user", resp.GetMessage())
	require.Empty(t, resp.GetOrders())
}

func TestGetUserOrdersResolvesUserOnce(t *testing.T) {
	svc, store, dir := newTestService(map[int64]*userpb.User{1: johnDoe()})

	for i := 0; i < 3; i++ {
		_, err := store.Create(1, []Item{{ProductName: "X", Quantity: 1, Price: 2}})
		require.NoError(t, err)
	}
	_, err := store.Create(2, []Item{{ProductName: "Y", Quantity: 1, Price: 3}})
	require.NoError(t, err)

	resp, err := svc.GetUserOrders(context.Background(), &pb.GetUserOrdersRequest{UserId: 1})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	require.Len(t, resp.GetOrders(), 3)
	require.Equal(t, 1, dir.lookups)

	for _, owu := range resp.GetOrders() {
		require.Equal(t, int64(1), owu.GetOrder().GetUserId())
		require.Equal(t, "John Doe", owu.GetUser().GetName())
	}
}

func TestGetUserOrdersUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(nil)

	resp, err := svc.GetUserOrders(context.Background(), &pb.GetUserOrdersRequest{UserId: 77})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "User with ID 77 not found", resp.GetMessage())
}
