package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pipelineboard/internal/config"
)

// useTempConfig 以临时数据目录初始化全局配置
func useTempConfig(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()
	cfg.Board.DefaultYears = []int{2025}
	t.Cleanup(func() { cfg = nil })
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestSetup_FlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))

	configPath, logLevel, dataDir = path, "debug", "/tmp/pb-data"
	defer func() { configPath, logLevel, dataDir = "", "", "" }()

	require.NoError(t, setup())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/pb-data", cfg.Data.DataDir)
	assert.NotNil(t, logger)
}

func TestRunReport(t *testing.T) {
	useTempConfig(t)
	reportYears = "2025"
	defer func() { reportYears = "" }()

	cmd, out := newTestCmd()
	require.NoError(t, runReport(cmd, nil))

	text := out.String()
	assert.Contains(t, text, "Years: 2025")
	assert.Contains(t, text, "Korea")
	assert.Contains(t, text, "Gentle Monster")
	assert.Contains(t, text, "Sales 2025")
	assert.Contains(t, text, "KRW ")
}

func TestRunReport_WithGoals(t *testing.T) {
	useTempConfig(t)
	cfg.Data.GoalsPath = filepath.Join(t.TempDir(), "goals.yaml")
	require.NoError(t, os.WriteFile(cfg.Data.GoalsPath, []byte(`
batches:
  - year: 2025
    region: Korea
    targets: {GM: 4}
`), 0o644))

	cmd, out := newTestCmd()
	require.NoError(t, runReport(cmd, nil))
	assert.Regexp(t, `Korea\s+0\s+4\s+4\s+0%`, out.String())
}

func TestRunImport_YAML(t *testing.T) {
	useTempConfig(t)
	path := filepath.Join(t.TempDir(), "stores.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stores:
  - id: gm-busan
    name: Gentle Monster Busan
    brand: Gentle Monster
    type: FS
    location: {city: Busan, country: South Korea}
    status: Open
    openDate: "2024-05-01"
`), 0o644))

	cmd, out := newTestCmd()
	require.NoError(t, runImport(cmd, []string{path}))
	assert.Contains(t, out.String(), "imported 1 stores")

	st, _, err := openStore()
	require.NoError(t, err)
	defer st.Close()
	n, err := st.CountStores()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunImport_MissingFile(t *testing.T) {
	useTempConfig(t)
	cmd, _ := newTestCmd()
	assert.Error(t, runImport(cmd, []string{filepath.Join(t.TempDir(), "none.xlsx")}))
}

func TestRunExport(t *testing.T) {
	useTempConfig(t)
	exportOutput = filepath.Join(t.TempDir(), "out.xlsx")
	exportFilter = listFlags{stage: "Open", sort: "name"}
	defer func() { exportOutput, exportFilter = "", listFlags{} }()

	cmd, out := newTestCmd()
	require.NoError(t, runExport(cmd, nil))
	assert.Contains(t, out.String(), exportOutput)

	f, err := excelize.OpenFile(exportOutput)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Pipeline")
	require.NoError(t, err)
	// 表头 + 8 家已开业门店
	assert.Len(t, rows, 9)
	assert.Contains(t, f.GetSheetList(), "Progress")
}

func TestRunExport_BadSort(t *testing.T) {
	useTempConfig(t)
	exportFilter = listFlags{sort: "rent"}
	defer func() { exportFilter = listFlags{} }()

	cmd, _ := newTestCmd()
	assert.Error(t, runExport(cmd, nil))
}

func TestRunInitConfig(t *testing.T) {
	useTempConfig(t)
	cfg.Server.Port = 30300
	configPath = filepath.Join(t.TempDir(), "config.toml")
	defer func() { configPath = "" }()

	cmd, out := newTestCmd()
	require.NoError(t, runInitConfig(cmd, nil))
	assert.Contains(t, out.String(), configPath)

	loaded, info, err := config.LoadFrom(configPath)
	require.NoError(t, err)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, 30300, loaded.Server.Port)
	assert.Equal(t, []int{2025}, loaded.Board.DefaultYears)
}

func TestRunReport_CurrentYear(t *testing.T) {
	useTempConfig(t)
	cfg.Board.DefaultYears = nil
	cfg.Board.CurrentYear = 2019

	cmd, out := newTestCmd()
	require.NoError(t, runReport(cmd, nil))
	assert.Contains(t, out.String(), "Years: 2019")
	assert.Regexp(t, `Gentle Monster\s+\d+\s+1\s+\d+`, out.String())
}
