package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []Candidate{
	{SKU: "CW-8544", Name: "Copper Wire 2.5mm"},
	{SKU: "SB-8536", Name: "Switch Board"},
	{SKU: "PVC-3917", Name: "PVC Pipe 110mm"},
}

func TestMatcherExactName(t *testing.T) {
	m := NewMatcher(catalog, 0)

	got, ok := m.Best("Switch Board")
	require.True(t, ok)
	assert.Equal(t, "SB-8536", got.SKU)
}

func TestMatcherToleratesOCRNoise(t *testing.T) {
	m := NewMatcher(catalog, 0)

	got, ok := m.Best("Copper Wlre 2.5mm")
	require.True(t, ok)
	assert.Equal(t, "CW-8544", got.SKU)
}

func TestMatcherContainment(t *testing.T) {
	m := NewMatcher(catalog, 0)

	got, ok := m.Best("Switch Board white 6 module")
	require.True(t, ok)
	assert.Equal(t, "SB-8536", got.SKU)
}

func TestMatcherRejectsUnrelated(t *testing.T) {
	m := NewMatcher(catalog, 0)

	_, ok := m.Best("Industrial Bearing Grease")
	assert.False(t, ok)
}

func TestMatcherEmptyQuery(t *testing.T) {
	m := NewMatcher(catalog, 0)

	_, ok := m.Best("   ")
	assert.False(t, ok)
}
