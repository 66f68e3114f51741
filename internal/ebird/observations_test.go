package ebird

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/birdgroups/internal/errors"
)

func TestLoadObservationsFile(t *testing.T) {
	t.Parallel()

	obs, err := LoadObservationsFile(filepath.Join("testdata", "recent.json"))
	require.NoError(t, err)
	require.Len(t, obs, 5)

	first := obs[0]
	assert.Equal(t, "mallar3", first.SpeciesCode)
	assert.Equal(t, "Mallard", first.CommonName)
	assert.Equal(t, "Anas platyrhynchos", first.ScientificName)
	assert.Equal(t, "2026-10-11 08:15", first.ObservedAt)
	assert.InDelta(t, 42.3601, first.Latitude, 1e-9)
	assert.True(t, first.Valid)
	count, ok := first.Count()
	assert.True(t, ok)
	assert.Equal(t, 14, count)

	// "X" count
	count, ok = obs[2].Count()
	assert.False(t, ok)
	assert.Zero(t, count)

	// null comName
	assert.Empty(t, obs[4].CommonName)
}

func TestDecodeObservationsErrors(t *testing.T) {
	t.Parallel()

	_, err := DecodeObservations(strings.NewReader(`{"comName": "Mallard"}`))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))

	_, err = LoadObservationsFile(filepath.Join("testdata", "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
}

func TestDecodeObservationsEmpty(t *testing.T) {
	t.Parallel()

	obs, err := DecodeObservations(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, obs)
}
