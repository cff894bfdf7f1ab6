package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pb "github.com/mfloresc/orders-grpc/internal/userpb"
)

// Service exposes the store over gRPC. Absence and validation failures are
// reported in-band (success=false plus a message); a delivered request never
// produces a gRPC status error.
type Service struct {
	pb.UnimplementedUserServiceServer
	store *Store
	log   *zap.Logger
}

func NewService(store *Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// GetUser
func (s *Service) GetUser(ctx context.Context, in *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	u, ok := s.store.Get(in.GetUserId())
	if !ok {
		return &pb.GetUserResponse{
			Success: false,
			Message: fmt.Sprintf("User with ID %d not found", in.GetUserId()),
		}, nil
	}
	return &pb.GetUserResponse{
		Success: true,
		Message: "User found successfully",
		User:    toPB(u),
	}, nil
}

// CreateUser
func (s *Service) CreateUser(ctx context.Context, in *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {
	u, err := s.store.Create(in.GetName(), in.GetEmail(), in.GetPhone())
	if err != nil {
		s.log.Warn("user rejected", zap.String("email", in.GetEmail()), zap.Error(err))
		return &pb.CreateUserResponse{
			Success: false,
			Message: rejectionMessage(err),
		}, nil
	}
	s.log.Info("user created", zap.Int64("user_id", u.ID))
	return &pb.CreateUserResponse{
		Success: true,
		Message: "User created successfully",
		User:    toPB(u),
	}, nil
}

// GetMultipleUsers never fails as a batch: missing IDs are reported only in
// the message text and by the shorter result list.
func (s *Service) GetMultipleUsers(ctx context.Context, in *pb.GetMultipleUsersRequest) (*pb.GetMultipleUsersResponse, error) {
	found, missing := s.store.GetMany(in.GetUserIds())

	users := make([]*pb.User, 0, len(found))
	for _, u := range found {
		users = append(users, toPB(u))
	}

	msg := fmt.Sprintf("All %d users found successfully", len(users))
	if len(missing) > 0 {
		msg = fmt.Sprintf("Users found: %d, Not found IDs: %v", len(users), missing)
	}
	return &pb.GetMultipleUsersResponse{
		Success: true,
		Message: msg,
		Users:   users,
	}, nil
}

func rejectionMessage(err error) string {
	switch err {
	case ErrMissingData:
		return "Name and email are required"
	case ErrEmailTaken:
		return "Email already exists"
	default:
		return err.Error()
	}
}

func toPB(u User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.Unix(),
	}
}
