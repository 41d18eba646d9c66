package database

import (
	"log/slog"
	"time"

	"avy-dashboard/internal/models"

	"github.com/jonboulle/clockwork"
	"github.com/m-mizutani/goerr/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is nil when the audit journal is disabled.
var DB *gorm.DB

// clock stamps journal entries and paces connection retries.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Init connects to postgres, retrying while the database comes up, and
// migrates the journal table.
func Init(dsn string, log *slog.Logger) error {
	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= maxAttempts; i++ {
		log.Info("connecting to audit database", "attempt", i, "max_attempts", maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err == nil {
			break
		}

		log.Warn("audit database connection failed", "error", err)
		clock.Sleep(retryBackoff)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to connect to audit database", goerr.V("attempts", maxAttempts))
	}

	return Use(db)
}

// Use installs an open connection and migrates the journal table.
func Use(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.GridEditLog{}); err != nil {
		return goerr.Wrap(err, "failed to migrate audit tables")
	}
	DB = db
	return nil
}
