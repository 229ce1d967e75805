package coach

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrContentExists = errors.New("content already generated for this client today")

type ContentRepository interface {
	Create(ctx context.Context, c *GeneratedContent) error
	FindByClientDateKind(ctx context.Context, clientID int64, date string, kind Kind) (*GeneratedContent, error)
	ListByGymDate(ctx context.Context, gymID int64, date string) ([]*GeneratedContent, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, c *GeneratedContent) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if err != nil && isUniqueViolation(err) {
		return ErrContentExists
	}
	return err
}

func (r *contentRepository) FindByClientDateKind(ctx context.Context, clientID int64, date string, kind Kind) (*GeneratedContent, error) {
	var c GeneratedContent
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND date = ? AND kind = ?", clientID, date, kind).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contentRepository) ListByGymDate(ctx context.Context, gymID int64, date string) ([]*GeneratedContent, error) {
	var list []*GeneratedContent
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND date = ?", gymID, date).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// isUniqueViolation covers both backends: pg error 23505 and gorm's
// translated duplicate-key error (sqlite).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
