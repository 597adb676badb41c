package parser

import (
	"strings"
)

// SheetRecognizer Sheet 类型识别器
type SheetRecognizer struct{}

// NewSheetRecognizer 创建识别器
func NewSheetRecognizer() *SheetRecognizer {
	return &SheetRecognizer{}
}

// storeKeyFields 门店表的关键字段
var storeKeyFields = []Field{FieldID, FieldName, FieldBrand, FieldCountry, FieldStatus}

// Recognize 识别 Sheet 类型：必须有 id 列，且关键字段命中过半
func (r *SheetRecognizer) Recognize(sheetName string, columnNames []string) SheetRecognitionResult {
	mapped := make(map[Field]bool)
	for _, m := range MapColumns(columnNames) {
		mapped[m.Field] = true
	}

	matchCount := 0
	for _, f := range storeKeyFields {
		if mapped[f] {
			matchCount++
		}
	}
	confidence := float64(matchCount) / float64(len(storeKeyFields))

	// Sheet 名称辅助判定
	name := strings.ToLower(strings.TrimSpace(sheetName))
	if name == "stores" || name == "pipeline" || strings.Contains(sheetName, "门店") {
		confidence += 0.2
	}
	if confidence > 1 {
		confidence = 1
	}

	if mapped[FieldID] && confidence >= 0.5 {
		return SheetRecognitionResult{SheetName: sheetName, SheetType: SheetTypeStores, Confidence: confidence}
	}
	return SheetRecognitionResult{SheetName: sheetName, SheetType: SheetTypeUnknown, Confidence: confidence}
}
