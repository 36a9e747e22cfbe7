// Package database は PostgreSQL への接続とスキーマ作成を行います。
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/quiz-portal/internal/assessments"
	"github.com/yourusername/quiz-portal/internal/users"
)

// Open は PostgreSQL に接続します。
// 一意制約違反を gorm.ErrDuplicatedKey として受け取れるよう TranslateError を有効にします。
func Open(dsn string, release bool) (*gorm.DB, error) {
	level := logger.Info
	if release {
		level = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate は users と assessments のテーブル・インデックスを作成します。
func Migrate(db *gorm.DB) error {
	log.Println("Applying database schema...")
	if err := db.AutoMigrate(&users.User{}, &assessments.Assessment{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close はコネクションプールを解放します。
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
