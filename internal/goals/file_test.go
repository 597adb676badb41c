package goals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelineboard/internal/model"
)

func writeGoalFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeGoalFile(t, `
batches:
  - year: 2025
    region: korea
    targets: {TB: 3, GM: 6, ND: 0}
  - year: 2025
    region: Japan
    targets: {GM: 2}
`)
	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, model.RegionKorea, entries[0].Region)
	assert.Equal(t, 6, entries[0].Target)
	assert.Equal(t, 3, entries[1].Target)
	assert.Equal(t, model.RegionJapan, entries[2].Region)
	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
	}
}

func TestLoadFile_BadBatch(t *testing.T) {
	path := writeGoalFile(t, `
batches:
  - year: 2025
    region: Korea
    targets: {XX: 1}
`)
	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrUnknownBrandCode)
	assert.Contains(t, err.Error(), "batch 1")
}

func TestPreload(t *testing.T) {
	s, err := Preload("")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count())

	path := writeGoalFile(t, `
batches:
  - year: 2024
    region: Europe
    targets: {GM: 1, TB: 1}
`)
	s, err = Preload(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count())

	_, err = Preload(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
