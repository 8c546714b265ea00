package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campushub/backend/internal/adapters/secondary/postgres"
	"github.com/campushub/backend/internal/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}

	if err := db.AutoMigrate(postgres.Migrations...); err != nil {
		t.Fatalf("failed automigrating entities: %v", err)
	}

	return db
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func registerUser(t *testing.T, svc *UserService, email, username string) *entity.User {
	t.Helper()

	user, err := svc.Register(context.Background(), email, "password123", username, username)
	if err != nil {
		t.Fatalf("failed registering %s: %v", username, err)
	}
	return user
}

func makeSuperAdmin(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()

	err := db.Model(&entity.Profile{}).
		Where("user_id = ?", userID).
		Update("is_super_admin", true).Error
	if err != nil {
		t.Fatalf("failed promoting user to super admin: %v", err)
	}
}
