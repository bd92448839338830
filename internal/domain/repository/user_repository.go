package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
}

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Department, error)
	FindByID(ctx context.Context, id string) (*entity.Department, error)
}

type RoomRepository interface {
	FindAll(ctx context.Context) ([]entity.Room, error)
}

type NotificationRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]entity.Notification, error)
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
