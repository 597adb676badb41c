package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	spaceRe     = regexp.MustCompile(`\s+`)
	separatorRe = regexp.MustCompile(`[_\-./()（）]`)
)

// NormalizeColumnName 规范化列名：小写，去除空白与分隔符
func NormalizeColumnName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = spaceRe.ReplaceAllString(name, "")
	return separatorRe.ReplaceAllString(name, "")
}

// MatchPattern 使用正则匹配
func MatchPattern(text, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// ParseFloat 解析数值单元格，允许千分位、货币符号与百分号
func ParseFloat(value string) (float64, error) {
	v := strings.TrimSpace(value)
	v = strings.NewReplacer(",", "", "%", "", "$", "", "₩", "", "¥", "", "€", "", "£", "").Replace(v)
	if v == "" || v == "-" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return f, nil
}

// ParseInt 解析整数单元格（允许 "2025.0" 形式）
func ParseInt(value string) (int, error) {
	f, err := ParseFloat(value)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("invalid integer %q", value)
	}
	return int(f), nil
}

// IsBlankRow 整行为空
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
