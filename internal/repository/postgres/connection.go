package postgres

import (
	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxOpenConns = 10

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Bounded pool; requests queue rather than fail when it is exhausted.
	sqlDB.SetMaxOpenConns(maxOpenConns)

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Member{},
		&domain.TrainingSession{},
		&domain.TrainingSessionMember{},
		&domain.AdminAction{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:            NewUserRepository(db),
		Session:         NewSessionRepository(db),
		Member:          NewMemberRepository(db),
		TrainingSession: NewTrainingSessionRepository(db),
		AdminAction:     NewAdminActionRepository(db),
	}
}
