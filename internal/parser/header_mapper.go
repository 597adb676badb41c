package parser

// columnPatterns 规范化后的列名 → 字段（按顺序匹配）
var columnPatterns = []struct {
	pattern string
	field   Field
}{
	{`^(id|storeid|storecode|门店id|门店编号)$`, FieldID},
	{`^(name|storename|门店名称|门店)$`, FieldName},
	{`^(brandcategory|category|品牌类别)$`, FieldBrandCategory},
	{`^(brand|品牌)$`, FieldBrand},
	{`^(type|channel|channeltype|渠道|渠道类型)$`, FieldType},
	{`^(city|城市)$`, FieldCity},
	{`^(country|国家)$`, FieldCountry},
	{`^(lat|latitude)$`, FieldLat},
	{`^(lng|lon|longitude)$`, FieldLng},
	{`^(statusyear|stageyear)$`, FieldStatusYear},
	{`^(status|stage|阶段|状态)$`, FieldStatus},
	{`^(changopendate|expectedopendate|预计开业日)$`, FieldChangOpenDate},
	{`^(opendate|开业日|开业日期)$`, FieldOpenDate},
	{`^(contractstart|contractstartdate|合同开始日)$`, FieldContractStart},
	{`^(contractend|contractenddate|合同结束日)$`, FieldContractEnd},
	{`^(area|size|sqm|areasqm|面积)$`, FieldArea},
	{`^(currency|币种)$`, FieldCurrency},
	{`^(monthlyrent|rent|月租金)$`, FieldMonthlyRent},
	{`^(monthlysales|月销售额)$`, FieldMonthlySales},
	{`^(investment|投资额)$`, FieldInvestment},
	{`^(estimatedsales|预计销售额)$`, FieldEstimatedSales},
	{`^(estimatedmargin|预计毛利率)$`, FieldEstimatedMargin},
}

// MapColumns 表头映射为字段；同一字段只取第一列
func MapColumns(columnNames []string) map[int]FieldMapping {
	mappings := make(map[int]FieldMapping)
	taken := make(map[Field]bool)

	for idx, name := range columnNames {
		col := NormalizeColumnName(name)
		if col == "" {
			continue
		}
		for _, p := range columnPatterns {
			if !MatchPattern(col, p.pattern) {
				continue
			}
			if !taken[p.field] {
				taken[p.field] = true
				mappings[idx] = FieldMapping{ColumnIndex: idx, ColumnName: name, Field: p.field}
			}
			break
		}
	}
	return mappings
}
