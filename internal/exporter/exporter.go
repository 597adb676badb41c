// Package exporter 门店列表与看板数据导出为 Excel
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pipelineboard/internal/board"
	"pipelineboard/internal/model"
	"pipelineboard/internal/util"
)

const (
	SheetPipeline = "Pipeline"
	SheetProgress = "Progress"
	SheetYearly   = "Yearly"
	SheetBrands   = "Brands"
)

// Exporter 导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportOptions 导出选项
type ExportOptions struct {
	Stores   []model.Store   // 已筛选、排序的门店
	Snapshot *board.Snapshot // 为 nil 时只导出门店列表
	Progress func(ProgressEvent)
}

var pipelineHeaders = []any{
	"ID", "Name", "Brand", "Type", "Class", "Stage", "Raw Stage", "Country", "City", "Region",
	"Open Date", "Contract Date", "Area", "Currency", "Monthly Rent", "Monthly Sales", "Investment",
}

// Export 生成工作簿
func (e *Exporter) Export(opts ExportOptions) (*excelize.File, error) {
	f := excelize.NewFile()

	reportProgress(opts.Progress, 0, "start")

	if err := f.SetSheetName("Sheet1", SheetPipeline); err != nil {
		_ = f.Close()
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E7FF"}, Pattern: 1},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("创建样式失败: %w", err)
	}

	if err := writePipelineSheet(f, headerStyle, opts.Stores); err != nil {
		_ = f.Close()
		return nil, err
	}
	reportProgress(opts.Progress, 50, SheetPipeline)

	if opts.Snapshot != nil {
		steps := []struct {
			name string
			fill func(*excelize.File, int, *board.Snapshot) error
		}{
			{SheetProgress, writeProgressSheet},
			{SheetYearly, writeYearlySheet},
			{SheetBrands, writeBrandSheet},
		}
		for i, step := range steps {
			if _, err := f.NewSheet(step.name); err != nil {
				_ = f.Close()
				return nil, err
			}
			if err := step.fill(f, headerStyle, opts.Snapshot); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("写入 %s 失败: %w", step.name, err)
			}
			reportProgress(opts.Progress, 50+(i+1)*50/len(steps), step.name)
		}
	}

	f.SetActiveSheet(0)
	reportProgress(opts.Progress, 100, "done")
	return f, nil
}

func writePipelineSheet(f *excelize.File, headerStyle int, stores []model.Store) error {
	if err := writeHeader(f, SheetPipeline, headerStyle, pipelineHeaders); err != nil {
		return err
	}
	for i := range stores {
		s := &stores[i]
		row := []any{
			s.ID, s.Name, s.Brand, util.OrDash(s.ChannelType), util.OrDash(string(s.Class())),
			string(s.Stage), s.RawStage, s.Location.Country, s.Location.City, string(s.Region()),
			s.EffectiveDate(), s.ContractDate,
		}
		if s.Area != nil {
			row = append(row, *s.Area)
		} else {
			row = append(row, "")
		}
		if fin := s.Financial; fin != nil {
			row = append(row, fin.Currency, fin.MonthlyRent, fin.MonthlySales, fin.Investment)
		} else {
			row = append(row, "", "", "", "")
		}
		if err := setRow(f, SheetPipeline, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetPipeline, "A", "Q", 16)
}

func writeProgressSheet(f *excelize.File, headerStyle int, snap *board.Snapshot) error {
	sheet := SheetProgress
	if err := writeHeader(f, sheet, headerStyle, []any{"Region", "Open", "Target", "Remaining", "Progress"}); err != nil {
		return err
	}
	var open, target int
	for i, r := range snap.Regions {
		open += r.OpenCount
		target += r.Target
		row := []any{string(r.Region), r.OpenCount, r.Target, r.Remaining, util.FormatPercent(r.Progress)}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	total := []any{"Total", open, target, board.Remaining(open, target), util.FormatPercent(board.Progress(open, target))}
	if err := setRow(f, sheet, len(snap.Regions)+2, total); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "E", 14)
}

func writeYearlySheet(f *excelize.File, headerStyle int, snap *board.Snapshot) error {
	sheet := SheetYearly
	headers := []any{"Year", "Previously Open", "Opened This Year", "Construction", "Signed", "Target", "Target Total"}
	if err := writeHeader(f, sheet, headerStyle, headers); err != nil {
		return err
	}
	for i, p := range snap.Series {
		row := []any{p.Year, p.PreviouslyOpen, p.OpenedThisYear, p.Construction, p.Signed, p.Target, p.TargetTotal}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeBrandSheet(f *excelize.File, headerStyle int, snap *board.Snapshot) error {
	sheet := SheetBrands
	if err := writeHeader(f, sheet, headerStyle, []any{"Brand", "Open", "New This Year", "Pipeline"}); err != nil {
		return err
	}
	for i, b := range snap.Brands {
		if err := setRow(f, sheet, i+2, []any{b.Brand, b.Open, b.NewThisYear, b.Pipeline}); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []any) error {
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, style)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
