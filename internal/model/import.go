package model

import "time"

// ImportLog 数据导入日志
type ImportLog struct {
	ID           int64      `json:"id"`
	Source       string     `json:"source"` // seed / 文件名
	TotalRows    int        `json:"totalRows"`
	ImportedRows int        `json:"importedRows"`
	ErrorRows    int        `json:"errorRows"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt"`
}
