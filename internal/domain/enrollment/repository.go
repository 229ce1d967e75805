package enrollment

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Enrollment) error
	GetByID(ctx context.Context, gymID, id int64) (*Enrollment, error)
	ListByClient(ctx context.Context, gymID, clientID int64) ([]*Enrollment, error)
	ListByGym(ctx context.Context, gymID int64) ([]*Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) GetByID(ctx context.Context, gymID, id int64) (*Enrollment, error) {
	var e Enrollment
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND id = ?", gymID, id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListByClient(ctx context.Context, gymID, clientID int64) ([]*Enrollment, error) {
	var list []*Enrollment
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND client_id = ?", gymID, clientID).
		Order("end_date DESC").
		Find(&list).Error
	return list, err
}

// ListByGym fetches every enrollment of the gym in one query; the reconciler
// and the detectors group them by client in memory instead of issuing
// per-client sub-queries.
func (r *repository) ListByGym(ctx context.Context, gymID int64) ([]*Enrollment, error) {
	var list []*Enrollment
	err := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("end_date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	return r.db.WithContext(ctx).
		Model(&Enrollment{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}
