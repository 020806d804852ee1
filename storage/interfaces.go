package storage

import (
	"context"

	"github.com/poiesic/litstore/core"
)

// Abstract is the persisted form of a paper record: the bibliographic fields
// paired with the embedding of the abstract body. Entities are created once
// at load time and never updated or deleted by this system.
type Abstract struct {
	ID              uint // Surrogate key, assigned by the store
	PMID            string
	Title           string
	AbstractText    string
	PublicationDate string // Empty when the source record carried no structured date
	Embedding       []float32
}

// NewAbstract pairs a record with its embedding vector.
func NewAbstract(record core.PaperRecord, embedding []float32) *Abstract {
	return &Abstract{
		PMID:            record.PMID,
		Title:           record.Title,
		AbstractText:    record.Abstract,
		PublicationDate: record.PublicationDate,
		Embedding:       embedding,
	}
}

// AbstractRepository provides operations for persisting embedded abstracts.
// Implementations must be thread-safe.
type AbstractRepository interface {
	// Init prepares the store for writes: enables the vector extension and
	// creates the destination schema. Idempotent; safe to call on an
	// already-initialized store. Failure indicates missing privileges or an
	// unreachable database and is not retried.
	Init(ctx context.Context) error

	// AddAbstracts inserts the given entities in one transaction.
	// All entities are committed atomically or none are.
	// Returns ErrDuplicate if any PMID already exists,
	// ErrDimensionMismatch if any embedding has the wrong length.
	AddAbstracts(ctx context.Context, abstracts ...*Abstract) error

	// CountAbstracts returns the number of persisted abstracts.
	CountAbstracts(ctx context.Context) (int64, error)

	// GetAbstractByPMID retrieves a single abstract by its external identifier.
	// Returns ErrNotFound if no such record exists.
	GetAbstractByPMID(ctx context.Context, pmid string) (*Abstract, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
