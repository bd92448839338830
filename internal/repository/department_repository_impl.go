package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type departmentRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewDepartmentRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.DepartmentRepository {
	return &departmentRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]entity.Department, error) {
	key := cache.DepartmentListKey()
	if v, ok := r.cache.Get(key); ok {
		if departments, ok := v.([]entity.Department); ok {
			return departments, nil
		}
	}

	raws, err := r.client.List(ctx, entity.Department{}.Collection(), nil)
	if err != nil {
		return nil, err
	}

	departments, err := converter.DepartmentsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, departments)
	return departments, nil
}

func (r *departmentRepository) FindByID(ctx context.Context, id string) (*entity.Department, error) {
	departments, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if departments[i].ID == id {
			return &departments[i], nil
		}
	}
	return nil, backend.ErrNotFound
}

type roomRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewRoomRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.RoomRepository {
	return &roomRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *roomRepository) FindAll(ctx context.Context) ([]entity.Room, error) {
	key := cache.RoomListKey()
	if v, ok := r.cache.Get(key); ok {
		if rooms, ok := v.([]entity.Room); ok {
			return rooms, nil
		}
	}

	raws, err := r.client.List(ctx, entity.Room{}.Collection(), nil)
	if err != nil {
		return nil, err
	}

	rooms, err := converter.RoomsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, rooms)
	return rooms, nil
}
