package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pb "github.com/mfloresc/orders-grpc/internal/orderpb"
	userpb "github.com/mfloresc/orders-grpc/internal/userpb"
)

// Service coordinates the order store with the user directory. Failures are
// reported in-band (success=false plus a message); a delivered request never
// produces a gRPC status error.
type Service struct {
	pb.UnimplementedOrderServiceServer
	store *Store
	users UserDirectory
	log   *zap.Logger
}

func NewService(store *Store, users UserDirectory, log *zap.Logger) *Service {
	return &Service{store: store, users: users, log: log}
}

// CreateOrder validates the user before the item list, so a request that is
// wrong on both counts reports the user error.
func (s *Service) CreateOrder(ctx context.Context, in *pb.CreateOrderRequest) (*pb.CreateOrderResponse, error) {
	u, ok := s.users.Lookup(ctx, in.GetUserId())
	if !ok {
		return &pb.CreateOrderResponse{
			Success: false,
			Message: fmt.Sprintf("User with ID %d not found", in.GetUserId()),
		}, nil
	}

	if len(in.GetItems()) == 0 {
		return &pb.CreateOrderResponse{
			Success: false,
			Message: "Order must contain at least one item",
		}, nil
	}

	o, err := s.store.Create(in.GetUserId(), itemsFromPB(in.GetItems()))
	if err != nil {
		return &pb.CreateOrderResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	s.log.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.Int64("user_id", o.UserID),
		zap.Float64("total_amount", o.TotalAmount))

	return &pb.CreateOrderResponse{
		Success: true,
		Message: "Order created successfully",
		Order:   compose(o, u),
	}, nil
}

// GetOrder resolves the owning user at read time. The second failure branch
// can only fire if the directory's data diverged from what held at creation
// time; users are immutable today, so this is defensive.
func (s *Service) GetOrder(ctx context.Context, in *pb.GetOrderRequest) (*pb.GetOrderResponse, error) {
	o, ok := s.store.Get(in.GetOrderId())
	if !ok {
		return &pb.GetOrderResponse{
			Success: false,
			Message: fmt.Sprintf("Order with ID %d not found", in.GetOrderId()),
		}, nil
	}

	u, ok := s.users.Lookup(ctx, o.UserID)
	if !ok {
		return &pb.GetOrderResponse{
			Success: false,
			Message: "User associated with order not found",
		}, nil
	}

	return &pb.GetOrderResponse{
		Success: true,
		Message: "Order found successfully",
		Order:   compose(o, u),
	}, nil
}

// GetUserOrders resolves the user once and reuses it for every composed
// order. An empty list is a success.
func (s *Service) GetUserOrders(ctx context.Context, in *pb.GetUserOrdersRequest) (*pb.GetUserOrdersResponse, error) {
	u, ok := s.users.Lookup(ctx, in.GetUserId())
	if !ok {
		return &pb.GetUserOrdersResponse{
			Success: false,
			Message: fmt.Sprintf("User with ID %d not found", in.GetUserId()),
		}, nil
	}

	orders := s.store.ListByUser(in.GetUserId())
	out := make([]*pb.OrderWithUser, 0, len(orders))
	for _, o := range orders {
		out = append(out, compose(o, u))
	}

	return &pb.GetUserOrdersResponse{
		Success: true,
		Message: fmt.Sprintf("Found %d orders for user", len(out)),
		Orders:  out,
	}, nil
}

func itemsFromPB(items []*pb.OrderItem) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{
			ProductName: it.GetProductName(),
			Quantity:    it.GetQuantity(),
			Price:       it.GetPrice(),
		})
	}
	return out
}

func compose(o Order, u *userpb.User) *pb.OrderWithUser {
	items := make([]*pb.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &pb.OrderItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return &pb.OrderWithUser{
		Order: &pb.Order{
			Id:          o.ID,
			UserId:      o.UserID,
			Items:       items,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt.Unix(),
		},
		User: u,
	}
}
