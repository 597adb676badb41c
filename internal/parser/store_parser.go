// Package parser Excel 门店表的识别与解析
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"pipelineboard/internal/ingest"
)

// StoreParser 门店表解析器
type StoreParser struct {
	file       *excelize.File
	recognizer *SheetRecognizer
}

// NewStoreParser 创建门店表解析器
func NewStoreParser(file *excelize.File) *StoreParser {
	return &StoreParser{
		file:       file,
		recognizer: NewSheetRecognizer(),
	}
}

// ParseSheet 解析门店 Sheet；无法解析的行记入 ParseResult.Errors 并跳过
func (p *StoreParser) ParseSheet(sheetName string) ([]ingest.RawStore, ParseResult, error) {
	start := time.Now()
	result := ParseResult{SheetName: sheetName, SheetType: SheetTypeUnknown, Status: "skipped"}

	rows, err := p.file.GetRows(sheetName)
	if err != nil {
		return nil, result, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 1 {
		return nil, result, fmt.Errorf("sheet has no header row")
	}

	// 第一行是表头
	headers := rows[0]
	recognition := p.recognizer.Recognize(sheetName, headers)
	if recognition.SheetType != SheetTypeStores {
		return nil, result, fmt.Errorf("not a store sheet")
	}
	result.SheetType = SheetTypeStores

	mappings := MapColumns(headers)

	var records []ingest.RawStore
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if IsBlankRow(row) {
			continue
		}
		result.TotalRows++

		record, err := parseStoreRow(row, mappings)
		if err != nil {
			result.ErrorRows++
			result.Errors = append(result.Errors, RowError{Row: rowIdx + 1, Message: err.Error()})
			continue
		}
		records = append(records, record)
	}

	result.ImportedRows = len(records)
	result.Status = "imported"
	result.Duration = time.Since(start)
	return records, result, nil
}

// parseStoreRow 解析单行数据
func parseStoreRow(row []string, mappings map[int]FieldMapping) (ingest.RawStore, error) {
	var record ingest.RawStore

	for colIdx, mapping := range mappings {
		if colIdx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[colIdx])
		if value == "" {
			continue
		}
		if err := setFieldValue(&record, mapping.Field, value); err != nil {
			return ingest.RawStore{}, fmt.Errorf("column %s: %w", mapping.ColumnName, err)
		}
	}

	// 验证必填字段
	if strings.TrimSpace(record.ID) == "" {
		return ingest.RawStore{}, fmt.Errorf("missing id")
	}
	return record, nil
}

// setFieldValue 根据字段名设置值
func setFieldValue(r *ingest.RawStore, field Field, value string) error {
	switch field {
	case FieldID:
		r.ID = value
	case FieldName:
		r.Name = value
	case FieldBrand:
		r.Brand = value
	case FieldBrandCategory:
		r.BrandCategory = value
	case FieldType:
		r.Type = value
	case FieldCity:
		r.Location.City = value
	case FieldCountry:
		r.Location.Country = value
	case FieldStatus:
		r.Status = value
	case FieldOpenDate:
		r.OpenDate = value
	case FieldChangOpenDate:
		r.ChangOpenDate = value
	case FieldContractStart:
		contract(r).StartDate = value
	case FieldContractEnd:
		contract(r).EndDate = value
	case FieldCurrency:
		financial(r).Currency = value
	case FieldStatusYear:
		y, err := ParseInt(value)
		if err != nil {
			return err
		}
		r.StatusYear = &y
	case FieldArea:
		a, err := ParseFloat(value)
		if err != nil {
			return err
		}
		r.Area = &a
	default:
		f, err := ParseFloat(value)
		if err != nil {
			return err
		}
		setNumber(r, field, f)
	}
	return nil
}

func setNumber(r *ingest.RawStore, field Field, v float64) {
	switch field {
	case FieldLat:
		r.Location.Lat = v
	case FieldLng:
		r.Location.Lng = v
	case FieldMonthlyRent:
		financial(r).MonthlyRent = v
	case FieldMonthlySales:
		financial(r).MonthlySales = v
	case FieldInvestment:
		financial(r).Investment = v
	case FieldEstimatedSales:
		financial(r).EstimatedSales = v
	case FieldEstimatedMargin:
		financial(r).EstimatedMargin = v
	}
}

func contract(r *ingest.RawStore) *ingest.RawContract {
	if r.Contract == nil {
		r.Contract = &ingest.RawContract{}
	}
	return r.Contract
}

func financial(r *ingest.RawStore) *ingest.RawFinancial {
	if r.Financial == nil {
		r.Financial = &ingest.RawFinancial{}
	}
	return r.Financial
}
