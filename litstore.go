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


// Package litstore populates a vector-searchable knowledge base of
// biomedical literature abstracts. It fetches records from PubMed, embeds
// each abstract with a sentence-embedding model, and persists the result
// into PostgreSQL with the pgvector extension.
package litstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/poiesic/litstore/ai"
	"github.com/poiesic/litstore/ai/openai"
	"github.com/poiesic/litstore/ingestion"
	"github.com/poiesic/litstore/storage"
	"github.com/poiesic/litstore/storage/postgres"
)

// Store bundles the storage backend and the embedding provider behind a
// single handle. The embedding model client is constructed once here and
// reused for every batch.
type Store struct {
	repo     storage.AbstractRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(cfg *ai.Config) StoreOption {
	return func(o *storeOptions) {
		o.aiConfig = cfg
	}
}

// NewStore connects to the database identified by dsn and constructs the
// embedding provider. The schema is not created until Init is called.
func NewStore(dsn string, opts ...StoreOption) (*Store, error) {
	options := &storeOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.aiConfig.Validate(); err != nil {
		return nil, err
	}

	// The embedding dimension is baked into the storage schema; refuse a
	// configuration that cannot match the column declaration.
	if options.aiConfig.Dimensions != postgres.VectorDimensions {
		return nil, fmt.Errorf("embedding dimensions %d do not match storage column dimensions %d",
			options.aiConfig.Dimensions, postgres.VectorDimensions)
	}

	repo, err := postgres.Open(dsn)
	if err != nil {
		return nil, err
	}

	embedder, err := openai.NewEmbedder(options.aiConfig)
	if err != nil {
		repo.Close()
		return nil, err
	}

	return &Store{
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default(),
	}, nil
}

// Init ensures the vector extension is active and the destination schema
// exists. Idempotent.
func (s *Store) Init(ctx context.Context) error {
	return s.repo.Init(ctx)
}

// Repository returns the abstract repository.
func (s *Store) Repository() storage.AbstractRepository {
	return s.repo
}

// Embedder returns the embedding provider.
func (s *Store) Embedder() ai.Embedder {
	return s.embedder
}

// NewLoader creates an ingestion loader writing progress to the given writer.
func (s *Store) NewLoader(config *ingestion.Config, progress io.Writer) (*ingestion.Loader, error) {
	return ingestion.NewLoader(s.repo, s.embedder, config, progress)
}

// Close releases the storage backend.
func (s *Store) Close() error {
	if err := s.repo.Close(); err != nil {
		s.logger.Error("error closing repository", "err", err)
		return err
	}
	return nil
}
