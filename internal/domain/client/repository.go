package client

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, cl *Client) error
	GetByID(ctx context.Context, gymID, id int64) (*Client, error)
	ListByGym(ctx context.Context, gymID int64) ([]*Client, error)
	ListActiveByGym(ctx context.Context, gymID int64) ([]*Client, error)
	Search(ctx context.Context, gymID int64, query string) ([]*Client, error)
	Update(ctx context.Context, cl *Client) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, gymID, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cl *Client) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *repository) GetByID(ctx context.Context, gymID, id int64) (*Client, error) {
	var cl Client
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND id = ?", gymID, id).
		First(&cl).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int64) ([]*Client, error) {
	var clients []*Client
	err := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) ListActiveByGym(ctx context.Context, gymID int64) ([]*Client, error) {
	var clients []*Client
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND active = ?", gymID, true).
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) Search(ctx context.Context, gymID int64, query string) ([]*Client, error) {
	var clients []*Client
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND name LIKE ?", gymID, "%"+query+"%").
		Order("name ASC").
		Limit(50).
		Find(&clients).Error
	return clients, err
}

func (r *repository) Update(ctx context.Context, cl *Client) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&Client{}).
		Where("id = ?", id).
		Updates(map[string]any{"active": active, "updated_at": time.Now()}).Error
}

func (r *repository) Delete(ctx context.Context, gymID, id int64) error {
	return r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Delete(&Client{}, id).Error
}
