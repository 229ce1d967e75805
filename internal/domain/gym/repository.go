package gym

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, g *Gym) error
	GetByID(ctx context.Context, id int64) (*Gym, error)
	Update(ctx context.Context, g *Gym) error
	ListIDs(ctx context.Context) ([]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Gym) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Gym, error) {
	var g Gym
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) Update(ctx context.Context, g *Gym) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// ListIDs returns every gym id; used by the maintenance binary to reconcile
// all tenants in one pass.
func (r *repository) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&Gym{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}
