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


package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/litstore/ai"
	"github.com/poiesic/litstore/core"
	"github.com/poiesic/litstore/storage"
)

// Config holds configuration for a load run.
type Config struct {
	// BatchSize is the number of records to embed and commit per batch
	BatchSize int

	// BatchDelay is the fixed pause after each batch commit, bounding the
	// request rate against the embedding service and database
	BatchDelay time.Duration

	// MaxRetries is the maximum number of attempts for embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		BatchDelay:     500 * time.Millisecond,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		ReportInterval: 100,
	}
}

// Loader embeds and persists paper records batch by batch.
// Processing is strictly sequential: the embedding call and commit for one
// batch complete before the next batch starts.
type Loader struct {
	repo     storage.AbstractRepository
	embedder ai.Embedder
	config   *Config
	progress io.Writer
	logger   *slog.Logger
}

// NewLoader creates a new loader.
// progress: where to write progress output (typically os.Stderr)
func NewLoader(repo storage.AbstractRepository, embedder ai.Embedder, config *Config, progress io.Writer) (*Loader, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultConfig().BatchSize
	}

	return &Loader{
		repo:     repo,
		embedder: embedder,
		config:   config,
		progress: progress,
		logger:   slog.Default().With("component", "loader"),
	}, nil
}

// Run embeds and commits all records, batch by batch.
// An embedding failure (after retries) or a commit failure aborts the run;
// batches committed before the failure remain durable. Context cancellation
// is honored between batches and during retry waits.
func (l *Loader) Run(ctx context.Context, records []core.PaperRecord) error {
	total := len(records)
	if total == 0 {
		fmt.Fprintf(l.progress, "No records to load (0 records)\n")
		return nil
	}

	fmt.Fprintf(l.progress, "Starting to embed and load %d records in batches of %d\n",
		total, l.config.BatchSize)

	tracker := NewProgressTracker(l.progress, total, l.config.ReportInterval)
	tracker.Start()

	processed := 0
	for start := 0; start < total; start += l.config.BatchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := start + l.config.BatchSize
		if end > total {
			end = total
		}
		batchNum := start/l.config.BatchSize + 1

		if err := l.loadBatch(ctx, records[start:end]); err != nil {
			return fmt.Errorf("batch %d: %w", batchNum, err)
		}

		processed += end - start
		tracker.Update(processed)
		l.logger.Info("committed batch", "batch", batchNum, "records", processed, "total", total)

		if err := l.pause(ctx); err != nil {
			return err
		}
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(l.progress, "Load complete. Committed %d records in %v (%.1f records/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}

// loadBatch embeds one contiguous slice of records and commits the resulting
// entities in a single transaction.
func (l *Loader) loadBatch(ctx context.Context, batch []core.PaperRecord) error {
	texts := make([]string, len(batch))
	for i, record := range batch {
		texts[i] = record.Abstract
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = l.embedder.EmbedTexts(ctx, texts)
		return err
	}, l.config.MaxRetries, l.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", l.config.MaxRetries, err)
	}

	if len(embeddings) != len(batch) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(embeddings))
	}

	entities := make([]*storage.Abstract, len(batch))
	for i, record := range batch {
		entities[i] = storage.NewAbstract(record, embeddings[i])
	}

	// No retry here: a commit failure aborts the run.
	if err := l.repo.AddAbstracts(ctx, entities...); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

func (l *Loader) pause(ctx context.Context) error {
	if l.config.BatchDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(l.config.BatchDelay)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
