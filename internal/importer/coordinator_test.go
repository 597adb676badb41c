package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"

	"pipelineboard/internal/ingest"
	"pipelineboard/internal/model"
	"pipelineboard/internal/parser"
	"pipelineboard/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "pipeline.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func writeWorkbook(t *testing.T, sheets map[string][][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "stores.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var header = []any{"id", "name", "brand", "type", "city", "country", "status", "openDate", "contractStart"}

func TestImport_Workbook(t *testing.T) {
	st := newStore(t)
	path := writeWorkbook(t, map[string][][]any{
		"Stores": {
			header,
			{"kr-01", "Seoul", "Gentle Monster", "FS", "Seoul", "South Korea", "Open", "2024-03-01", ""},
			{"jp-01", "Osaka", "Nudake", "Department Store", "Osaka", "Japan", "Contract", "", "2025-02-01"},
			{"", "no id"},
		},
	})

	coordinator := NewCoordinator(st, zaptest.NewLogger(t))
	var types []string
	var report *parser.ImportReport
	for evt := range coordinator.Import(ImportOptions{FilePath: path}) {
		types = append(types, evt.Type)
		if evt.Type == "error" {
			t.Fatalf("import error event: %s", evt.Message)
		}
		if evt.Type == "done" {
			report, _ = evt.Data.(*parser.ImportReport)
		}
	}

	require.NotNil(t, report, "missing done report")
	assert.Equal(t, "start", types[0])
	assert.Equal(t, "done", types[len(types)-1])
	assert.Equal(t, 1, report.ImportedSheets)
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 2, report.ImportedRows)
	assert.Equal(t, 1, report.ErrorRows)

	stores, err := st.ListStores()
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "kr-01", stores[0].ID)
	assert.Equal(t, model.StageSigned, stores[1].Stage)
	assert.Equal(t, "Contract", stores[1].RawStage)
	assert.Equal(t, "2025-02-01", stores[1].ContractDate)
	assert.Equal(t, model.CategoryHouse, stores[1].Category)

	last, err := st.LastImport()
	require.NoError(t, err)
	assert.Equal(t, "stores.xlsx", last.Source)
	assert.Equal(t, "success", last.Status)
}

func TestImport_DuplicateIDKeepsExistingData(t *testing.T) {
	st := newStore(t)
	coordinator := NewCoordinator(st, zaptest.NewLogger(t))

	ds, err := ingest.LoadSeed()
	require.NoError(t, err)
	_, err = coordinator.Seed(ds.Stores, "seed")
	require.NoError(t, err)

	path := writeWorkbook(t, map[string][][]any{
		"Stores": {
			header,
			{"dup", "A", "Nudake", "FS", "Seoul", "Korea", "Open", "2024-01-01", ""},
			{"dup", "B", "Nudake", "FS", "Tokyo", "Japan", "Open", "2024-01-01", ""},
		},
	})

	_, err = coordinator.ImportSync(ImportOptions{FilePath: path, Source: "dup.xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate store id "dup"`)

	n, err := st.CountStores()
	require.NoError(t, err)
	assert.Equal(t, len(ds.Stores), n)

	last, err := st.LastImport()
	require.NoError(t, err)
	assert.Equal(t, "failed", last.Status)
	assert.Equal(t, "seed", st.DatasetSource())
}

func TestImport_NoStoreSheet(t *testing.T) {
	st := newStore(t)
	path := writeWorkbook(t, map[string][][]any{
		"Notes": {{"memo"}, {"hello"}},
	})

	_, err := NewCoordinator(st, nil).ImportSync(ImportOptions{FilePath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrNoStoreSheet.Error())
}

func TestImport_YAMLDataset(t *testing.T) {
	st := newStore(t)
	path := filepath.Join(t.TempDir(), "stores.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stores:
  - id: us-01
    name: SoHo
    brand: Tamburins
    type: FS
    location: {city: New York, country: USA}
    status: Planned
`), 0o644))

	report, err := NewCoordinator(st, nil).ImportSync(ImportOptions{FilePath: path})
	require.NoError(t, err)
	assert.Equal(t, 1, report.ImportedRows)

	s, err := st.GetStore("us-01")
	require.NoError(t, err)
	assert.Equal(t, model.RegionAmericas, s.Region())
}

func TestImport_MissingFile(t *testing.T) {
	st := newStore(t)
	_, err := NewCoordinator(st, nil).ImportSync(ImportOptions{FilePath: filepath.Join(t.TempDir(), "missing.xlsx")})
	assert.Error(t, err)
}
