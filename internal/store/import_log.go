package store

import (
	"database/sql"
	"fmt"
	"time"

	"pipelineboard/internal/model"
)

// RecordFailedImport 记录一次失败的导入，门店数据保持不变
func (s *Store) RecordFailedImport(source string, totalRows, errorRows int, message string) (int64, error) {
	now := time.Now()
	res, err := s.db.Exec(`
		INSERT INTO import_logs (source, total_rows, imported_rows, error_rows, status, error_message, started_at, completed_at)
		VALUES (?, ?, 0, ?, 'failed', ?, ?, ?)
	`, source, totalRows, errorRows, message, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// LastImport 最近一次导入日志；从未导入时返回 ErrNotFound
func (s *Store) LastImport() (*model.ImportLog, error) {
	logs, err := s.ListImports(1)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("import log: %w", ErrNotFound)
	}
	return &logs[0], nil
}

// ListImports 最近的导入日志，新的在前
func (s *Store) ListImports(limit int) ([]model.ImportLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, source, total_rows, imported_rows, error_rows, status, error_message, started_at, completed_at
		FROM import_logs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var out []model.ImportLog
	for rows.Next() {
		var (
			l         model.ImportLog
			completed sql.NullTime
		)
		if err := rows.Scan(&l.ID, &l.Source, &l.TotalRows, &l.ImportedRows, &l.ErrorRows,
			&l.Status, &l.ErrorMessage, &l.StartedAt, &completed); err != nil {
			return nil, err
		}
		if completed.Valid {
			t := completed.Time
			l.CompletedAt = &t
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
