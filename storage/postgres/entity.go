package postgres

import (
	"github.com/pgvector/pgvector-go"
	"github.com/poiesic/litstore/storage"
)

// VectorDimensions is the declared dimension of the embedding column.
// It must match the embedding model's output size (all-MiniLM-L6-v2
// produces 384-dimension vectors). Changing it requires recreating the
// table; AutoMigrate will not alter an existing vector column.
const VectorDimensions = 384

// abstractRow is the GORM model for the medical_abstracts table.
type abstractRow struct {
	ID              uint            `gorm:"primaryKey"`
	PMID            string          `gorm:"uniqueIndex;not null"`
	Title           string          `gorm:"type:text;not null"`
	Abstract        string          `gorm:"type:text;not null"`
	PublicationDate string          `gorm:"default:''"`
	Embedding       pgvector.Vector `gorm:"type:vector(384)"`
}

func (abstractRow) TableName() string {
	return "medical_abstracts"
}

// newAbstractRow converts a storage entity into its column representation.
// The []float32 embedding is converted to the pgvector wire type here, at
// the storage boundary.
func newAbstractRow(a *storage.Abstract) abstractRow {
	return abstractRow{
		ID:              a.ID,
		PMID:            a.PMID,
		Title:           a.Title,
		Abstract:        a.AbstractText,
		PublicationDate: a.PublicationDate,
		Embedding:       pgvector.NewVector(a.Embedding),
	}
}

func (r abstractRow) toAbstract() *storage.Abstract {
	return &storage.Abstract{
		ID:              r.ID,
		PMID:            r.PMID,
		Title:           r.Title,
		AbstractText:    r.Abstract,
		PublicationDate: r.PublicationDate,
		Embedding:       r.Embedding.Slice(),
	}
}
