package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"pipelineboard/internal/model"
)

// SortKey 可排序的列
type SortKey string

const (
	SortNone     SortKey = ""
	SortName     SortKey = "name"
	SortBrand    SortKey = "brand"
	SortType     SortKey = "type"
	SortStage    SortKey = "stage"
	SortCountry  SortKey = "country"
	SortRegion   SortKey = "region"
	SortOpenDate SortKey = "openDate"
	SortArea     SortKey = "area"
)

// SortDir 排序方向
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// SortSpec 当前排序设置；Key 为空时使用默认顺序（分区 → 有效日期）
type SortSpec struct {
	Key SortKey `json:"key"`
	Dir SortDir `json:"dir"`
}

// ParseSortKey 解析排序列名
func ParseSortKey(v string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(v)); k {
	case SortNone, SortName, SortBrand, SortType, SortStage, SortCountry, SortRegion, SortOpenDate, SortArea:
		return k, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q", v)
}

// Toggle 点击列头：同一列切换方向，不同列重置为升序
func (s SortSpec) Toggle(key SortKey) SortSpec {
	if key == SortNone {
		return SortSpec{}
	}
	if s.Key == key {
		if s.Dir == Asc {
			return SortSpec{Key: key, Dir: Desc}
		}
		return SortSpec{Key: key, Dir: Asc}
	}
	return SortSpec{Key: key, Dir: Asc}
}

// Sort 稳定排序，返回新切片
func Sort(stores []model.Store, spec SortSpec) []model.Store {
	out := make([]model.Store, len(stores))
	copy(out, stores)

	if spec.Key == SortNone {
		sort.SliceStable(out, func(i, j int) bool {
			return defaultLess(&out[i], &out[j])
		})
		return out
	}

	desc := spec.Dir == Desc
	sort.SliceStable(out, func(i, j int) bool {
		c := compareBy(&out[i], &out[j], spec.Key)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// defaultLess 默认顺序：分区固定顺序升序，再按有效日期升序
func defaultLess(a, b *model.Store) bool {
	ra, rb := model.RegionRank(a.Region()), model.RegionRank(b.Region())
	if ra != rb {
		return ra < rb
	}
	return a.EffectiveDate() < b.EffectiveDate()
}

func compareBy(a, b *model.Store, key SortKey) int {
	switch key {
	case SortName:
		return strings.Compare(a.Name, b.Name)
	case SortBrand:
		return strings.Compare(a.Brand, b.Brand)
	case SortType:
		return strings.Compare(a.ChannelType, b.ChannelType)
	case SortStage:
		return strings.Compare(string(a.Stage), string(b.Stage))
	case SortCountry:
		return strings.Compare(a.Location.Country, b.Location.Country)
	case SortRegion:
		return model.RegionRank(a.Region()) - model.RegionRank(b.Region())
	case SortOpenDate:
		return strings.Compare(a.OpenDate, b.OpenDate)
	case SortArea:
		av, bv := a.AreaValue(), b.AreaValue()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}
