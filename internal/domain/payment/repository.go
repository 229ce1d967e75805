package payment

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByGym(ctx context.Context, gymID int64, from, to time.Time) ([]*Payment, error)
	ListByClient(ctx context.Context, gymID, clientID int64) ([]*Payment, error)
	TotalByGym(ctx context.Context, gymID int64, from, to time.Time) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ListByGym(ctx context.Context, gymID int64, from, to time.Time) ([]*Payment, error) {
	var list []*Payment
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND paid_at >= ? AND paid_at < ?", gymID, from, to).
		Order("paid_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListByClient(ctx context.Context, gymID, clientID int64) ([]*Payment, error) {
	var list []*Payment
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND client_id = ?", gymID, clientID).
		Order("paid_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) TotalByGym(ctx context.Context, gymID int64, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("gym_id = ? AND paid_at >= ? AND paid_at < ?", gymID, from, to).
		Scan(&total).Error
	return total, err
}
