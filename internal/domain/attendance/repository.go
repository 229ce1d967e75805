package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	ListByClient(ctx context.Context, gymID, clientID int64, limit int) ([]*Attendance, error)
	ListByDate(ctx context.Context, gymID int64, date time.Time) ([]*Attendance, error)

	// Bulk queries used by the detectors: one round trip per gym, grouped in
	// memory, instead of per-client sub-queries.
	ListSince(ctx context.Context, gymID int64, since time.Time) ([]*Attendance, error)
	LastDateByClient(ctx context.Context, gymID int64) (map[int64]time.Time, error)
	LifetimeCountByClient(ctx context.Context, gymID int64) (map[int64]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ListByClient(ctx context.Context, gymID, clientID int64, limit int) ([]*Attendance, error) {
	var list []*Attendance
	q := r.db.WithContext(ctx).
		Where("gym_id = ? AND client_id = ?", gymID, clientID).
		Order("checked_in_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repository) ListByDate(ctx context.Context, gymID int64, date time.Time) ([]*Attendance, error) {
	var list []*Attendance
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND date = ?", gymID, date).
		Order("checked_in_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListSince(ctx context.Context, gymID int64, since time.Time) ([]*Attendance, error) {
	var list []*Attendance
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND date >= ?", gymID, since).
		Order("date ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) LastDateByClient(ctx context.Context, gymID int64) (map[int64]time.Time, error) {
	type row struct {
		ClientID int64     `gorm:"column:client_id"`
		Last     time.Time `gorm:"column:last"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Select("client_id, MAX(date) AS last").
		Where("gym_id = ?", gymID).
		Group("client_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64]time.Time, len(rows))
	for _, r := range rows {
		out[r.ClientID] = r.Last
	}
	return out, nil
}

func (r *repository) LifetimeCountByClient(ctx context.Context, gymID int64) (map[int64]int, error) {
	type row struct {
		ClientID int64 `gorm:"column:client_id"`
		Total    int   `gorm:"column:total"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Select("client_id, COUNT(*) AS total").
		Where("gym_id = ?", gymID).
		Group("client_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64]int, len(rows))
	for _, r := range rows {
		out[r.ClientID] = r.Total
	}
	return out, nil
}
