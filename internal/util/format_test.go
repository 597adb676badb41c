package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0, ""))
	assert.Equal(t, "999", FormatAmount(999, ""))
	assert.Equal(t, "1,000", FormatAmount(1000, ""))
	assert.Equal(t, "KRW 12,345,678", FormatAmount(12345678.4, "KRW"))
	assert.Equal(t, "-1,500", FormatAmount(-1500, ""))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "20%", FormatPercent(20))
	assert.Equal(t, "100%", FormatPercent(100))
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "All", FormatYears(nil))
	assert.Equal(t, "2024, 2025", FormatYears([]int{2025, 2024}))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", OrDash("  "))
	assert.Equal(t, "Seoul", OrDash("Seoul"))
}
