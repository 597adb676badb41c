package parser

import "time"

// SheetType Sheet 类型
type SheetType string

const (
	SheetTypeStores  SheetType = "stores"
	SheetTypeUnknown SheetType = "unknown"
)

// Field 门店表的列对应的原始字段
type Field string

const (
	FieldID              Field = "id"
	FieldName            Field = "name"
	FieldBrand           Field = "brand"
	FieldBrandCategory   Field = "brandCategory"
	FieldType            Field = "type"
	FieldCity            Field = "city"
	FieldCountry         Field = "country"
	FieldLat             Field = "lat"
	FieldLng             Field = "lng"
	FieldStatus          Field = "status"
	FieldStatusYear      Field = "statusYear"
	FieldOpenDate        Field = "openDate"
	FieldChangOpenDate   Field = "changOpenDate"
	FieldContractStart   Field = "contractStart"
	FieldContractEnd     Field = "contractEnd"
	FieldArea            Field = "area"
	FieldCurrency        Field = "currency"
	FieldMonthlyRent     Field = "monthlyRent"
	FieldMonthlySales    Field = "monthlySales"
	FieldInvestment      Field = "investment"
	FieldEstimatedSales  Field = "estimatedSales"
	FieldEstimatedMargin Field = "estimatedMargin"
)

// SheetRecognitionResult Sheet 识别结果
type SheetRecognitionResult struct {
	SheetName  string    `json:"sheetName"`
	SheetType  SheetType `json:"sheetType"`
	Confidence float64   `json:"confidence"` // 置信度 0-1
}

// FieldMapping 字段映射结果
type FieldMapping struct {
	ColumnIndex int    `json:"columnIndex"` // Excel 列索引
	ColumnName  string `json:"columnName"`  // Excel 列名
	Field       Field  `json:"field"`
}

// RowError 单行解析错误
type RowError struct {
	Row     int    `json:"row"` // Excel 行号（从 1 开始）
	Message string `json:"message"`
}

// ParseResult 解析结果
type ParseResult struct {
	SheetName    string        `json:"sheetName"`
	SheetType    SheetType     `json:"sheetType"`
	Status       string        `json:"status"` // imported/skipped/error
	TotalRows    int           `json:"totalRows"`
	ImportedRows int           `json:"importedRows"`
	ErrorRows    int           `json:"errorRows"`
	Errors       []RowError    `json:"errors,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// ImportReport 导入报告
type ImportReport struct {
	Filename       string        `json:"filename"`
	TotalSheets    int           `json:"totalSheets"`
	ImportedSheets int           `json:"importedSheets"`
	SkippedSheets  int           `json:"skippedSheets"`
	TotalRows      int           `json:"totalRows"`
	ImportedRows   int           `json:"importedRows"`
	ErrorRows      int           `json:"errorRows"`
	Duration       time.Duration `json:"duration"`
	Sheets         []ParseResult `json:"sheets"`
}
