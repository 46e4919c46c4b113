package results

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, h *Handoff) error
	Take(ctx context.Context, id uuid.UUID, now time.Time) (*Handoff, error)
	GetActive(ctx context.Context, id uuid.UUID, now time.Time) (*Handoff, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, h *Handoff) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// Take returns nil when the hand-off is unknown, expired or already taken.
func (r *repository) Take(ctx context.Context, id uuid.UUID, now time.Time) (*Handoff, error) {
	var handoff *Handoff

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var h Handoff
		if err := tx.
			Where("id = ? AND expires_at > ? AND taken_at IS NULL", id, now).
			First(&h).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		result := tx.Model(&Handoff{}).
			Where("id = ? AND taken_at IS NULL", id).
			Update("taken_at", now)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		h.TakenAt = &now
		handoff = &h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return handoff, nil
}

func (r *repository) GetActive(ctx context.Context, id uuid.UUID, now time.Time) (*Handoff, error) {
	var h Handoff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, now).
		First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&Handoff{})
	return result.RowsAffected, result.Error
}
