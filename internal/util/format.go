package util

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FormatPercent 整数百分比，如 20 → "20%"
func FormatPercent(value int) string {
	return strconv.Itoa(value) + "%"
}

// FormatAmount 千分位金额，保留到整数；currency 非空时作为前缀
func FormatAmount(value float64, currency string) string {
	neg := value < 0
	digits := strconv.FormatInt(int64(math.Round(math.Abs(value))), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	if currency == "" {
		return b.String()
	}
	return fmt.Sprintf("%s %s", currency, b.String())
}

// FormatYears 年份列表，如 "2024, 2025"；为空时为 "All"
func FormatYears(years []int) string {
	if len(years) == 0 {
		return "All"
	}
	sorted := append([]int(nil), years...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, y := range sorted {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}

// OrDash 空字符串显示为 "-"
func OrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
