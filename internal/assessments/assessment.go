// Package assessments は小テストの採点と受験記録の保存・参照を提供します。
package assessments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnswerDetail は設問ごとの採点結果です。
type AnswerDetail struct {
	QuestionNumber int    `json:"questionNumber"`
	UserAnswer     string `json:"userAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// Assessment は採点済みの受験記録です。作成後に変更・削除されることはありません。
type Assessment struct {
	ID             string                            `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID        string                            `gorm:"column:owner_id;size:128;not null;index:idx_assessments_owner_submitted,priority:1" json:"ownerId"`
	Subject        string                            `gorm:"size:64;not null" json:"subject"`
	Answers        datatypes.JSONSlice[AnswerDetail] `gorm:"type:jsonb;not null" json:"answers"`
	Score          int                               `gorm:"not null" json:"score"`
	TotalQuestions int                               `gorm:"not null" json:"totalQuestions"`
	Percentage     int                               `gorm:"not null" json:"percentage"`
	SubmittedAt    time.Time                         `gorm:"not null;index:idx_assessments_owner_submitted,priority:2,sort:desc" json:"submittedAt"`
}

// TableName は gorm が使うテーブル名です。
func (Assessment) TableName() string {
	return "assessments"
}

// BeforeCreate は ID と提出日時の既定値を設定します。
func (a *Assessment) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now().UTC()
	}
	return nil
}

// Summary は一覧表示用の受験記録です。設問ごとの詳細は含みません。
type Summary struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     int       `json:"percentage"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// Log は受験記録の追記と参照を行います。
type Log interface {
	// Append は記録を追加して ID を返します。
	Append(ctx context.Context, record *Assessment) (string, error)
	// ListByOwner は利用者の記録を提出日時の新しい順に返します。
	ListByOwner(ctx context.Context, ownerID string) ([]Summary, error)
	// GetByIDAndOwner は利用者本人の記録を返します。存在しない・他人の記録の場合は nil です。
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*Assessment, error)
}
