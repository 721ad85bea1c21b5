package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/utkarshun/my-top-ten-movies-list/internal/config"
)

// Open connects to the configured database and returns the handle.
// The default driver is sqlite, matching a single-user deployment;
// postgres is available for a server deployment via DB_DRIVER.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  true,
	})

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		// map driver duplicate-key errors to gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DB.Driver {
	case "sqlite", "":
		log.Printf("opening sqlite database at %s", cfg.DB.Path)
		db, err = gorm.Open(sqlite.Open(cfg.DB.Path), gormConfig)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s dbname=%s port=%d sslmode=%s password=%s",
			cfg.DB.Host, cfg.DB.User, cfg.DB.Name, cfg.DB.Port, cfg.DB.SSLMode, cfg.DB.Pass)
		log.Printf("connecting to postgres host=%s db=%s user=%s port=%d sslmode=%s",
			cfg.DB.Host, cfg.DB.Name, cfg.DB.User, cfg.DB.Port, cfg.DB.SSLMode)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Println("database connection established")
	return db, nil
}

func Migrate(db *gorm.DB, models ...interface{}) error {
	log.Println("running AutoMigrate")
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("migrations complete")
	return nil
}
