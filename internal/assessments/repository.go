package assessments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/quiz-portal/internal/apperrors"
)

// GormLog は Log の PostgreSQL 実装です。
type GormLog struct {
	db *gorm.DB
}

// NewGormLog は GormLog を作成します。
func NewGormLog(db *gorm.DB) *GormLog {
	return &GormLog{db: db}
}

func (l *GormLog) Append(ctx context.Context, record *Assessment) (string, error) {
	if err := l.db.WithContext(ctx).Create(record).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrUnavailable, "Failed to save assessment", err)
	}
	return record.ID, nil
}

func (l *GormLog) ListByOwner(ctx context.Context, ownerID string) ([]Summary, error) {
	summaries := make([]Summary, 0)
	err := l.db.WithContext(ctx).
		Model(&Assessment{}).
		Select("id", "subject", "score", "total_questions", "percentage", "submitted_at").
		Where("owner_id = ?", ownerID).
		Order("submitted_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnavailable, "Failed to fetch assessment history", err)
	}
	return summaries, nil
}

func (l *GormLog) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*Assessment, error) {
	// uuid 列に不正な文字列を渡すと DB エラーになるため、先に弾いて「存在しない」扱いにする
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var record Assessment
	err := l.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrUnavailable, "Failed to fetch assessment", err)
	}
	return &record, nil
}
