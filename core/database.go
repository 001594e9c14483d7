package core

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// DatabaseManager owns the MySQL pool for the whole service.
type DatabaseManager struct {
	DB       *gorm.DB
	SqlDB    *sql.DB
	LogLevel LogLevel
}

// New creates the global pool. dsn must include the schema and parseTime=true.
func New(dsn string, maxConnection int, level LogLevel) (*DatabaseManager, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(level)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{DB: db, SqlDB: sqlDB, LogLevel: level}, nil
}

func gormLogLevel(level LogLevel) logger.LogLevel {
	switch level {
	case LogLevelError:
		return logger.Error
	case LogLevelWarn:
		return logger.Warn
	case LogLevelInfo:
		return logger.Info
	case LogLevelSilent:
		return logger.Silent
	}
	return logger.Info
}

// Close closes the global pool.
func (dm *DatabaseManager) Close() error {
	return dm.SqlDB.Close()
}
