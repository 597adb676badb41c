package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pipelineboard/internal/model"
)

// ReplaceStores 事务内整体替换门店记录，并写入一条成功的导入日志
func (s *Store) ReplaceStores(records []model.Store, source string) (*model.ImportLog, error) {
	started := time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stores"); err != nil {
		return nil, fmt.Errorf("failed to clear stores: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO stores (seq, id, name, brand, stage, country, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		payload, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode store %s: %w", r.ID, err)
		}
		if _, err := stmt.Exec(i, r.ID, r.Name, r.Brand, string(r.Stage), r.Location.Country, string(payload)); err != nil {
			return nil, fmt.Errorf("failed to insert store %s: %w", r.ID, err)
		}
	}

	completed := time.Now()
	res, err := tx.Exec(`
		INSERT INTO import_logs (source, total_rows, imported_rows, error_rows, status, started_at, completed_at)
		VALUES (?, ?, ?, 0, 'success', ?, ?)
	`, source, len(records), len(records), started, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get import log id: %w", err)
	}

	if err := setMeta(tx, metaDatasetSource, source); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &model.ImportLog{
		ID:           id,
		Source:       source,
		TotalRows:    len(records),
		ImportedRows: len(records),
		Status:       "success",
		StartedAt:    started,
		CompletedAt:  &completed,
	}, nil
}

// ListStores 按导入顺序返回全部门店
func (s *Store) ListStores() ([]model.Store, error) {
	rows, err := s.db.Query("SELECT payload FROM stores ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var out []model.Store
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var st model.Store
		if err := json.Unmarshal([]byte(payload), &st); err != nil {
			return nil, fmt.Errorf("failed to decode store: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// GetStore 按 id 查询门店
func (s *Store) GetStore(id string) (*model.Store, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM stores WHERE id = ?", id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("store %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	var st model.Store
	if err := json.Unmarshal([]byte(payload), &st); err != nil {
		return nil, fmt.Errorf("failed to decode store %s: %w", id, err)
	}
	return &st, nil
}

// CountStores 门店总数
func (s *Store) CountStores() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM stores").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return n, nil
}
