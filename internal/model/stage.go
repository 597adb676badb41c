package model

import "strings"

// Stage 门店在拓展流程中的阶段
type Stage string

const (
	StagePlanned      Stage = "Planned"
	StageConfirmed    Stage = "Confirmed"
	StageSigned       Stage = "Signed"
	StageConstruction Stage = "Construction"
	StageOpen         Stage = "Open"

	StageClosed   Stage = "Closed"
	StageRejected Stage = "Rejected"
	StagePending  Stage = "Pending"

	// StageUnclassified 无法识别的旧状态名，原文保留在 Store.RawStage
	StageUnclassified Stage = "Unclassified"
)

// CoreStages 主流程阶段（有序）
var CoreStages = []Stage{
	StagePlanned,
	StageConfirmed,
	StageSigned,
	StageConstruction,
	StageOpen,
}

// ExceptionStages 终止/异常阶段
var ExceptionStages = []Stage{
	StageClosed,
	StageRejected,
	StagePending,
}

// stageAliases 旧状态名 → 当前状态名（key 为小写）
var stageAliases = map[string]Stage{
	"plan":     StagePlanned,
	"planed":   StagePlanned,
	"confirm":  StageConfirmed,
	"contract": StageSigned,
	"space":    StageConstruction,
	"close":    StageClosed,
	"reject":   StageRejected,
	"hold":     StagePending,
	"on hold":  StagePending,
}

// NormalizeStage 将原始状态名规范化为当前阶段集合中的一项
// 未匹配的标签归入 StageUnclassified
func NormalizeStage(label string) Stage {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return StageUnclassified
	}
	for _, s := range CoreStages {
		if strings.ToLower(string(s)) == key {
			return s
		}
	}
	for _, s := range ExceptionStages {
		if strings.ToLower(string(s)) == key {
			return s
		}
	}
	if s, ok := stageAliases[key]; ok {
		return s
	}
	return StageUnclassified
}

// ParseStage 解析筛选条件中的阶段；无法识别的标签返回 ok=false
// 只有字面量 Unclassified 才解析为 StageUnclassified
func ParseStage(label string) (Stage, bool) {
	st := NormalizeStage(label)
	if st == StageUnclassified && !strings.EqualFold(strings.TrimSpace(label), string(StageUnclassified)) {
		return "", false
	}
	return st, true
}

// IsCore 是否为主流程阶段
func (s Stage) IsCore() bool {
	for _, c := range CoreStages {
		if c == s {
			return true
		}
	}
	return false
}

// IsTerminal 是否为终止状态（闭店/否决）
func (s Stage) IsTerminal() bool {
	return s == StageClosed || s == StageRejected
}

// InPipeline 是否仍在推进中（非 Open 且非终止）
func (s Stage) InPipeline() bool {
	return s != StageOpen && !s.IsTerminal() && s != StageUnclassified
}

// Rank 阶段顺序，主流程之外的阶段排在最后
func (s Stage) Rank() int {
	for i, c := range CoreStages {
		if c == s {
			return i
		}
	}
	for i, c := range ExceptionStages {
		if c == s {
			return len(CoreStages) + i
		}
	}
	return len(CoreStages) + len(ExceptionStages)
}

// All 表示“全部”的筛选值
const All = "ALL"

// IsAll 判断筛选值是否为不限
func IsAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All) || v == "전체"
}
