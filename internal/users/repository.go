package users

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-portal/internal/apperrors"
)

// GormDirectory は Directory の PostgreSQL 実装です。
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory は GormDirectory を作成します。
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) FindByIDOrEmail(ctx context.Context, externalID, email string) (*User, error) {
	var user User
	err := d.db.WithContext(ctx).
		Where("external_id = ? OR email = ?", externalID, email).
		First(&user).Error
	return found(&user, err)
}

func (d *GormDirectory) FindByID(ctx context.Context, externalID string) (*User, error) {
	var user User
	err := d.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&user).Error
	return found(&user, err)
}

func (d *GormDirectory) Create(ctx context.Context, user *User) error {
	err := d.db.WithContext(ctx).Create(user).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.ErrDuplicateKey, "User already exists", err)
	default:
		return apperrors.Wrap(apperrors.ErrUnavailable, "Registration failed", err)
	}
}

func found(user *User, err error) (*User, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrUnavailable, "Server error", err)
	}
	return user, nil
}
