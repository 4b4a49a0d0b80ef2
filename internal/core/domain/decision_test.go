package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionSourceIcon(t *testing.T) {
	assert.Equal(t, "https://x/y.svg", Sourced("https://x/y.svg").SourceIcon())
	assert.Equal(t, GeneratedMarker, Generated("lookup_no_results").SourceIcon())
}

func TestDecisionValidate(t *testing.T) {
	require.NoError(t, Sourced("https://x/y.svg").Validate())
	require.NoError(t, Generated("lookup_disabled").Validate())

	assert.ErrorIs(t, Sourced("").Validate(), ErrManifestIntegrity)
	assert.ErrorIs(t, Sourced(GeneratedMarker).Validate(), ErrManifestIntegrity,
		"the marker is reserved for synthesized icons")
	assert.ErrorIs(t, Generated("").Validate(), ErrManifestIntegrity)
	assert.ErrorIs(t, Decision{Path: "guessed"}.Validate(), ErrManifestIntegrity)
}
