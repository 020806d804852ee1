package litstore

import (
	"testing"

	"github.com/poiesic/litstore/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_RejectsInvalidAIConfig(t *testing.T) {
	_, err := NewStore("postgres://localhost/litstore",
		WithAIConfig(ai.NewConfig(ai.WithEmbeddingModel(""))))
	require.Error(t, err)
}

func TestNewStore_RejectsDimensionMismatch(t *testing.T) {
	// The schema declares a 384-dimension column; a 1536-dimension model
	// configuration must be refused before any connection is attempted.
	_, err := NewStore("postgres://localhost/litstore",
		WithAIConfig(ai.NewConfig(ai.WithDimensions(1536))))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match storage column dimensions")
}
