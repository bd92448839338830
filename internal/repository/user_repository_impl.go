package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type userRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewUserRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.UserRepository {
	return &userRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	key := cache.UserListKey()
	if v, ok := r.cache.Get(key); ok {
		if users, ok := v.([]entity.User); ok {
			return users, nil
		}
	}

	raws, err := r.client.List(ctx, entity.User{}.Collection(), nil)
	if err != nil {
		return nil, err
	}

	users, err := converter.UsersFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, users)
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	key := cache.UserKey(id)
	if v, ok := r.cache.Get(key); ok {
		if user, ok := v.(*entity.User); ok {
			return user, nil
		}
	}

	raw, err := r.client.Get(ctx, entity.User{}.Collection(), id)
	if err != nil {
		return nil, err
	}

	user, err := converter.UserFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, user)
	return user, nil
}

func (r *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	key := cache.UsersByRoleKey(string(role))
	if v, ok := r.cache.Get(key); ok {
		if users, ok := v.([]entity.User); ok {
			return users, nil
		}
	}

	raws, err := r.client.List(ctx, entity.User{}.Collection(), map[string]string{"role": string(role)})
	if err != nil {
		return nil, err
	}

	users, err := converter.UsersFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, users)
	return users, nil
}
