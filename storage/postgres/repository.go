// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/litstore/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Repository implements storage.AbstractRepository on PostgreSQL with the
// pgvector extension.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Option configures a Repository.
type Option func(*options)

type options struct {
	gormLogLevel gormlogger.LogLevel
}

// WithGormLogLevel sets the verbosity of GORM's own logger.
// Default is Silent; ambient logging goes through slog instead.
func WithGormLogLevel(level gormlogger.LogLevel) Option {
	return func(o *options) {
		o.gormLogLevel = level
	}
}

// newRepository is an internal constructor that returns the concrete type.
func newRepository(dsn string, opts ...Option) (*Repository, error) {
	o := &options{gormLogLevel: gormlogger.Silent}
	for _, opt := range opts {
		opt(o)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(o.gormLogLevel),
		// Translate driver errors so duplicate keys can be detected portably.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Repository{
		db:     db,
		logger: slog.Default().With("component", "postgres"),
	}, nil
}

// Open connects to the database identified by the connection string.
// The schema is not touched until Init is called.
//
// Returns storage.AbstractRepository interface to enforce abstraction.
func Open(dsn string, opts ...Option) (storage.AbstractRepository, error) {
	return newRepository(dsn, opts...)
}

// Init enables the pgvector extension and creates the destination table.
// Both steps are idempotent. A failure here is fatal to the run: it means
// the database is unreachable or the role lacks privileges.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enabling vector extension: %w", err)
	}

	if err := r.db.WithContext(ctx).AutoMigrate(&abstractRow{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	r.logger.Info("database initialized", "table", abstractRow{}.TableName(), "dimensions", VectorDimensions)
	return nil
}

// AddAbstracts inserts the given entities in a single transaction.
// Embedding lengths are validated against the declared column dimension
// before any round-trip; a mismatch is a schema violation.
func (r *Repository) AddAbstracts(ctx context.Context, abstracts ...*storage.Abstract) error {
	if len(abstracts) == 0 {
		return nil
	}

	rows := make([]abstractRow, len(abstracts))
	for i, a := range abstracts {
		if len(a.Embedding) != VectorDimensions {
			return fmt.Errorf("%w: pmid %s has %d dimensions, column declares %d",
				storage.ErrDimensionMismatch, a.PMID, len(a.Embedding), VectorDimensions)
		}
		rows[i] = newAbstractRow(a)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %w", storage.ErrDuplicate, err)
		}
		return fmt.Errorf("inserting abstracts: %w", err)
	}

	// Surrogate keys are populated by Create; reflect them back.
	for i := range rows {
		abstracts[i].ID = rows[i].ID
	}

	return nil
}

// CountAbstracts returns the number of persisted abstracts.
func (r *Repository) CountAbstracts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&abstractRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting abstracts: %w", err)
	}
	return count, nil
}

// GetAbstractByPMID retrieves a single abstract by its external identifier.
func (r *Repository) GetAbstractByPMID(ctx context.Context, pmid string) (*storage.Abstract, error) {
	var row abstractRow
	err := r.db.WithContext(ctx).Where("pmid = ?", pmid).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pmid %s", storage.ErrNotFound, pmid)
		}
		return nil, fmt.Errorf("querying abstract: %w", err)
	}
	return row.toAbstract(), nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
