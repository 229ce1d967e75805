package plan

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, gymID, id int64) (*Plan, error)
	ListByGym(ctx context.Context, gymID int64) ([]*Plan, error)
	Update(ctx context.Context, p *Plan) error
	Deactivate(ctx context.Context, gymID, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, gymID, id int64) (*Plan, error) {
	var p Plan
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND id = ?", gymID, id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int64) ([]*Plan, error) {
	var plans []*Plan
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND is_active = ?", gymID, true).
		Order("price ASC").
		Find(&plans).Error
	return plans, err
}

func (r *repository) Update(ctx context.Context, p *Plan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Deactivate hides a plan from new enrollments without breaking the ones
// that already reference it.
func (r *repository) Deactivate(ctx context.Context, gymID, id int64) error {
	return r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("gym_id = ? AND id = ?", gymID, id).
		Update("is_active", false).Error
}
