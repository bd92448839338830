package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type notificationRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewNotificationRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.NotificationRepository {
	return &notificationRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Notification, error) {
	key := cache.NotificationsByUserKey(userID)
	if v, ok := r.cache.Get(key); ok {
		if notifications, ok := v.([]entity.Notification); ok {
			return notifications, nil
		}
	}

	raws, err := r.client.List(ctx, entity.Notification{}.Collection(), map[string]string{"user_id": userID})
	if err != nil {
		return nil, err
	}

	notifications, err := converter.NotificationsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, notifications)
	return notifications, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	raw, err := r.client.Create(ctx, entity.Notification{}.Collection(), notification)
	if err != nil {
		return nil, err
	}

	created, err := converter.NotificationFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.NotificationsPrefix)
	return created, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	if _, err := r.client.Patch(ctx, entity.Notification{}.Collection(), id, map[string]any{"read": true}); err != nil {
		return err
	}

	r.cache.Invalidate(cache.NotificationsPrefix)
	return nil
}
