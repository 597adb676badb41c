package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelineboard/internal/model"
)

func TestNormalize_LegacyFields(t *testing.T) {
	raw := RawStore{
		ID:            " tb-bkk-siam ",
		Name:          "Tamburins Siam",
		Brand:         "Tamburins",
		Type:          "Mall",
		Location:      RawLocation{City: "Bangkok", Country: "Thailand"},
		Status:        "Contract",
		OpenDate:      "2026-01-01",
		ChangOpenDate: "2026/03/15",
		Contract:      &RawContract{StartDate: "2025-07"},
	}

	s, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "tb-bkk-siam", s.ID)
	assert.Equal(t, model.StageSigned, s.Stage)
	assert.Equal(t, "Contract", s.RawStage)
	assert.Equal(t, "2026-03-15", s.OpenDate)
	assert.Equal(t, "2025-07-01", s.ContractDate)
	assert.Equal(t, model.CategoryHouse, s.Category)
	assert.Equal(t, model.RegionSoutheastAsia, s.Region())
	assert.Equal(t, model.ClassTypeBased, s.Class())
}

func TestNormalize_ContractDateFallback(t *testing.T) {
	s, err := Normalize(RawStore{
		ID:       "x",
		Status:   "Planned",
		OpenDate: "TBD",
		Contract: &RawContract{StartDate: "2027-02-01"},
	})
	require.NoError(t, err)

	assert.Empty(t, s.OpenDate)
	y, ok := s.EffectiveYear()
	require.True(t, ok)
	assert.Equal(t, 2027, y)
}

func TestNormalize_UnknownStageIsUnclassified(t *testing.T) {
	s, err := Normalize(RawStore{ID: "x", Status: "Negotiation"})
	require.NoError(t, err)
	assert.Equal(t, model.StageUnclassified, s.Stage)
	assert.Equal(t, "Negotiation", s.RawStage)
}

func TestNormalize_MissingID(t *testing.T) {
	_, err := Normalize(RawStore{Name: "no id"})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestNormalizeAll_DuplicateID(t *testing.T) {
	_, err := NormalizeAll([]RawStore{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestLoadSeed(t *testing.T) {
	ds, err := LoadSeed()
	require.NoError(t, err)

	assert.Len(t, ds.Stores, 14)
	assert.Len(t, ds.CompetitorBrands, 6)
	assert.Len(t, ds.PreferredBrands, 20)

	for _, s := range ds.Stores {
		assert.Truef(t, s.IsHouse(), "%s should be a house store", s.ID)
		assert.NotEqualf(t, model.StageUnclassified, s.Stage, "%s stage", s.ID)
	}
}
