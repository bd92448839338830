package usecase

import (
	"context"
	"errors"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"

	"github.com/sirupsen/logrus"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	ListForUser(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) ListForUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	notifications, err := u.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to list notifications for user %s: %+v", userID, err)
		return nil, err
	}
	return notifications, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, id string) error {
	if err := u.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return ErrNotificationNotFound
		}
		u.log.Warnf("Failed to mark notification %s read: %+v", id, err)
		return err
	}
	return nil
}
