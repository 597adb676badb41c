package goals

import (
	"errors"
	"fmt"
	"sync"

	"pipelineboard/internal/model"
)

var (
	// ErrNegativeTarget 目标值不能为负
	ErrNegativeTarget = errors.New("goal target must not be negative")
	// ErrUnknownBrandCode 无法识别的品牌简码
	ErrUnknownBrandCode = errors.New("unknown brand code")
)

// Store 目标内存存储（有序，仅存在于进程内存）
// 同一 (year, region, brand) 只保留一条
type Store struct {
	mu      sync.RWMutex
	entries []model.Goal
}

// NewStore 创建目标存储
func NewStore() *Store {
	return &Store{}
}

// List 返回全部目标（副本）
func (s *Store) List() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Goal(nil), s.entries...)
}

// Count 目标条数
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Upsert 同键替换，否则追加
func (s *Store) Upsert(entries []model.Goal) error {
	if err := validate(entries); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = upsert(s.entries, entries)
	return nil
}

// Delete 删除 id 在集合中的目标，返回删除条数
func (s *Store) Delete(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int
	s.entries, removed = remove(s.entries, ids)
	return removed
}

// ReplaceAll 整体替换（编辑面板保存时使用）；重复键以后出现的为准
func (s *Store) ReplaceAll(entries []model.Goal) error {
	if err := validate(entries); err != nil {
		return err
	}
	next := upsert(nil, entries)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = next
	return nil
}

// Draft 基于当前内容开启一个编辑草稿
func (s *Store) Draft() *Draft {
	return &Draft{store: s, entries: s.List()}
}

func validate(entries []model.Goal) error {
	for _, g := range entries {
		if g.Target < 0 {
			return fmt.Errorf("%w: %d for %d/%s/%s", ErrNegativeTarget, g.Target, g.Year, g.Region, g.Brand)
		}
	}
	return nil
}

func upsert(current, incoming []model.Goal) []model.Goal {
	index := make(map[model.GoalKey]int, len(current))
	for i, g := range current {
		index[g.Key()] = i
	}
	for _, g := range incoming {
		if i, ok := index[g.Key()]; ok {
			current[i] = g
			continue
		}
		index[g.Key()] = len(current)
		current = append(current, g)
	}
	return current
}

func remove(current []model.Goal, ids []string) ([]model.Goal, int) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := current[:0]
	for _, g := range current {
		if !drop[g.ID] {
			kept = append(kept, g)
		}
	}
	removed := len(current) - len(kept)
	// 清掉尾部残留引用
	for i := len(kept); i < len(current); i++ {
		current[i] = model.Goal{}
	}
	return kept, removed
}
