package billing

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, sub *AccountSubscription) error
	GetByGymID(ctx context.Context, gymID int64) (*AccountSubscription, error)
	Update(ctx context.Context, sub *AccountSubscription) error
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sub *AccountSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) GetByGymID(ctx context.Context, gymID int64) (*AccountSubscription, error) {
	var sub AccountSubscription
	err := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) Update(ctx context.Context, sub *AccountSubscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// ExpireOverdue flips trialing subscriptions past their trial end and active
// ones past their paid period to expired. Run by the maintenance binary.
func (r *repository) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&AccountSubscription{}).
		Where("(status = ? AND trial_ends_at < ?) OR (status = ? AND expires_at IS NOT NULL AND expires_at < ?)",
			StatusTrialing, now, StatusActive, now).
		Updates(map[string]any{"status": StatusExpired, "updated_at": now})
	return int(result.RowsAffected), result.Error
}
