package goals

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pipelineboard/internal/model"
)

// goalFile 目标文件格式：按年份/分区的批量录入
//
//	batches:
//	  - year: 2025
//	    region: Korea
//	    targets: {GM: 6, TB: 3}
type goalFile struct {
	Batches []Batch `yaml:"batches"`
}

// LoadFile 从 YAML 文件读取目标并展开为单条目标（分配新 id）
func LoadFile(path string) ([]model.Goal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read goals %s: %w", path, err)
	}
	var gf goalFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse goals %s: %w", path, err)
	}

	var out []model.Goal
	for i, b := range gf.Batches {
		entries, err := ExpandBatch(b)
		if err != nil {
			return nil, fmt.Errorf("goals %s batch %d: %w", path, i+1, err)
		}
		out = append(out, entries...)
	}
	return out, nil
}

// Preload 读取目标文件写入存储；path 为空时返回空存储
func Preload(path string) (*Store, error) {
	s := NewStore()
	if path == "" {
		return s, nil
	}
	entries, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.Upsert(entries); err != nil {
		return nil, err
	}
	return s, nil
}
