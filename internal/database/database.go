// Package database wraps the GORM connection that backs the board game
// catalog.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/gameshelf-api/internal/models"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

type DB struct {
	*gorm.DB
	log *zap.Logger
}

// TableStatus reports whether a catalog table exists
type TableStatus struct {
	Table    string `json:"table"`
	Migrated bool   `json:"migrated"`
}

// CatalogModels lists every model owned by the catalog schema
func CatalogModels() []any {
	return []any{&models.BoardGame{}}
}

// Initialize opens the SQLite database at dbPath. An empty path or
// ":memory:" opens a private in-memory database.
func Initialize(dbPath string, verbose bool, log *zap.Logger) (*DB, error) {
	inMemory := dbPath == "" || strings.HasPrefix(dbPath, ":memory:")

	if !inMemory {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// every in-memory connection is its own database
	if inMemory {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &DB{DB: db, log: logging.OrNop(log)}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(dst ...any) error {
	if err := db.DB.AutoMigrate(dst...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	db.log.Info("migrated models", zap.Int("count", len(dst)))
	return nil
}

// MigrateCatalog creates or updates the catalog tables
func (db *DB) MigrateCatalog() error {
	return db.AutoMigrate(CatalogModels()...)
}

// CatalogStatus reports which catalog tables exist
func (db *DB) CatalogStatus() ([]TableStatus, error) {
	migrator := db.DB.Migrator()
	var status []TableStatus
	for _, model := range CatalogModels() {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model: %w", err)
		}
		status = append(status, TableStatus{
			Table:    stmt.Schema.Table,
			Migrated: migrator.HasTable(model),
		})
	}
	return status, nil
}
