package order

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/mfloresc/orders-grpc/internal/orderpb"
	"github.com/mfloresc/orders-grpc/internal/user"
)

// startOrderService wires the full chain over bufconn: order servicer →
// user client → user servicer, and returns an order stub.
func startOrderService(t *testing.T) (pb.OrderServiceClient, *user.Store) {
	t.Helper()

	userStub, userStore := startUserService(t)

	svc := NewService(NewStore(), NewUserClient(userStub, time.Second, zap.NewNop()), zap.NewNop())

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	pb.RegisterOrderServiceServer(srv, svc)
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

	return pb.NewOrderServiceClient(conn), userStore
}

func TestCreateAndFetchOrderAcrossServices(t *testing.T) {
	client, userStore := startOrderService(t)
	john, err := userStore.Create("John Doe", "john@example.com", "+1234567890")
	require.NoError(t, err)

	created, err := client.CreateOrder(context.Background(), &pb.CreateOrderRequest{
		UserId: john.ID,
		Items: []*pb.OrderItem{
			{ProductName: "Laptop", Quantity: 1, Price: 999.99},
			{ProductName: "Mouse", Quantity: 2, Price: 25.50},
		},
	})
	require.NoError(t, err)
	require.True(t, created.GetSuccess())

	orderID := created.GetOrder().GetOrder().GetId()
	require.Equal(t, 1050.99, created.GetOrder().GetOrder().GetTotalAmount())
	require.Equal(t, "john@example.com", created.GetOrder().GetUser().GetEmail())

	fetched, err := client.GetOrder(context.Background(), &pb.GetOrderRequest{OrderId: orderID})
	require.NoError(t, err)
	require.True(t, fetched.GetSuccess())
	require.Equal(t, orderID, fetched.GetOrder().GetOrder().GetId())
	require.Equal(t, StatusPending, fetched.GetOrder().GetOrder().GetStatus())

	list, err := client.GetUserOrders(context.Background(), &pb.GetUserOrdersRequest{UserId: john.ID})
	require.NoError(t, err)
	require.True(t, list.GetSuccess())
	require.Len(t, list.GetOrders(), 1)
}

func TestCreateOrderForMissingUserAcrossServices(t *testing.T) {
	client, _ := startOrderService(t)

	resp, err := client.CreateOrder(context.Background(), &pb.CreateOrderRequest{
		UserId: 999,
		Items:  []*pb.OrderItem{{ProductName: "Test", Quantity: 1, Price: 10.00}},
	})
	require.NoError(t, err)
	require.False(t, resp.GetSuccess())
	require.Equal(t, "User with ID 999 not found", resp.GetMessage())
}
