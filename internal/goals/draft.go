package goals

import "pipelineboard/internal/model"

// Draft 目标编辑草稿；Commit 前的修改对 Store 不可见，丢弃草稿即取消
type Draft struct {
	store   *Store
	entries []model.Goal
}

// Entries 草稿内容
func (d *Draft) Entries() []model.Goal {
	return append([]model.Goal(nil), d.entries...)
}

// Upsert 在草稿中新增/替换
func (d *Draft) Upsert(entries []model.Goal) error {
	if err := validate(entries); err != nil {
		return err
	}
	d.entries = upsert(d.entries, entries)
	return nil
}

// Delete 在草稿中删除
func (d *Draft) Delete(ids []string) int {
	var removed int
	d.entries, removed = remove(d.entries, ids)
	return removed
}

// Commit 用草稿内容整体替换 Store
func (d *Draft) Commit() error {
	return d.store.ReplaceAll(d.entries)
}
