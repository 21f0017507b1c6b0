package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alma-platform/alma-operations-service/internal/config"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.OperationsConfig) *gorm.DB {
	dsn := cfg.OperationsDB.Dsn
	// TranslateError turns driver unique-violations into
	// gorm.ErrDuplicatedKey, which the operation repo relies on for
	// code-collision retries.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.ClientModel{},
		&models.OperationModel{},
		&models.OperationLogModel{},
	); err != nil {
		log.Fatalf("failed to migrate db: %v\n", err.Error())
	}

	return db
}
