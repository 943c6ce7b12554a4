package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent_Deterministic(t *testing.T) {
	a := IDFromContent("Jane Doe\nBuilt X using Python")
	b := IDFromContent("Jane Doe\nBuilt X using Python")
	assert.Equal(t, a, b, "identical text must yield identical IDs")
}

func TestIDFromContent_HexDigest(t *testing.T) {
	id := IDFromContent("some cv text")
	require.Len(t, string(id), 64)
	require.NoError(t, ValidateID(id))
}

func TestIDFromContent_DifferentContent(t *testing.T) {
	a := IDFromContent("cv one")
	b := IDFromContent("cv two")
	assert.NotEqual(t, a, b)
}

func TestIDFromContent_EmptyString(t *testing.T) {
	// Validation rejects empty raw text upstream, but the digest itself
	// must still be well defined.
	id := IDFromContent("")
	assert.Len(t, string(id), 64)
}
