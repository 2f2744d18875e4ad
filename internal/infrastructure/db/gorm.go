package db

import (
	"log"

	"github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	"github.com/iamaanahmad/LoanLedger/internal/domain/compliance"
	"github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	"github.com/iamaanahmad/LoanLedger/internal/domain/trade"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InMemoryDSN keeps one shared database for every connection in the
// process; it lives exactly as long as the process (the session).
const InMemoryDSN = "file::memory:?cache=shared&_busy_timeout=5000"

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(sqlite.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A single writer connection: SQLite serializes writes anyway, and one
	// connection keeps the shared in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&loan.Loan{},
		&trade.Trade{},
		&audit.Entry{},
		&compliance.Check{},
	)
}
