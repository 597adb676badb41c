package store

import (
	"database/sql"
	"errors"
	"fmt"
)

const metaDatasetSource = "dataset_source"

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// GetMeta 读取元信息
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("meta key %s: %w", key, ErrNotFound)
		}
		return "", err
	}
	return value, nil
}

// SetMeta 写入元信息
func (s *Store) SetMeta(key, value string) error {
	return setMeta(s.db, key, value)
}

// AllMeta 全部元信息
func (s *Store) AllMeta() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM meta")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		meta[key] = value
	}
	return meta, rows.Err()
}

// DatasetSource 当前数据集来源（最近一次成功导入）
func (s *Store) DatasetSource() string {
	v, err := s.GetMeta(metaDatasetSource)
	if err != nil {
		return ""
	}
	return v
}

func setMeta(db execer, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	if err != nil {
		return fmt.Errorf("failed to set meta %s: %w", key, err)
	}
	return nil
}
