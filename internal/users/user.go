// Package users は利用者レコードの永続化とプロフィール API を提供します。
package users

import (
	"context"
	"time"
)

// User は登録済みの利用者です。登録後に更新されることはありません。
type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	ExternalID   string    `gorm:"column:external_id;size:128;not null;uniqueIndex" json:"externalId"`
	DisplayName  string    `gorm:"column:name;size:255;not null" json:"displayName"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// TableName は gorm が使うテーブル名です。
func (User) TableName() string {
	return "users"
}

// Directory は利用者レコードの検索と登録を行います。
type Directory interface {
	// FindByIDOrEmail は外部IDまたはメールアドレスが一致する利用者を返します。見つからない場合は nil です。
	FindByIDOrEmail(ctx context.Context, externalID, email string) (*User, error)
	// FindByID は外部IDで利用者を返します。見つからない場合は nil です。
	FindByID(ctx context.Context, externalID string) (*User, error)
	// Create は利用者を登録します。一意制約違反は apperrors.ErrDuplicateKey になります。
	Create(ctx context.Context, user *User) error
}
