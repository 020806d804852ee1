package postgres

import (
	"testing"

	"github.com/poiesic/litstore/core"
	"github.com/poiesic/litstore/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmbedding(dim int) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = float32(i) / float32(dim)
	}
	return v
}

func TestNewAbstractRow_RoundTrip(t *testing.T) {
	record := core.PaperRecord{
		PMID:            "38012345",
		Title:           "Dietary fiber and glycemic control",
		Abstract:        "We studied the effect of dietary fiber.",
		PublicationDate: "2024-03-15",
	}
	entity := storage.NewAbstract(record, testEmbedding(VectorDimensions))

	row := newAbstractRow(entity)
	assert.Equal(t, entity.PMID, row.PMID)
	assert.Equal(t, entity.Title, row.Title)
	assert.Equal(t, entity.AbstractText, row.Abstract)
	assert.Equal(t, entity.PublicationDate, row.PublicationDate)

	back := row.toAbstract()
	require.Len(t, back.Embedding, VectorDimensions)
	assert.Equal(t, entity.Embedding, back.Embedding)
	assert.Equal(t, entity.PMID, back.PMID)
}

func TestNewAbstractRow_EmptyPublicationDate(t *testing.T) {
	record := core.PaperRecord{
		PMID:     "38012346",
		Title:    "Untitled dates",
		Abstract: "No structured date in the source record.",
	}
	entity := storage.NewAbstract(record, testEmbedding(VectorDimensions))

	row := newAbstractRow(entity)
	assert.Equal(t, "", row.PublicationDate)
}

func TestVectorDimensionsMatchesReferenceModel(t *testing.T) {
	// all-MiniLM-L6-v2 produces 384-dimension vectors; the column
	// declaration in the gorm tag must agree with this constant.
	assert.Equal(t, 384, VectorDimensions)
}
