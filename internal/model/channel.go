package model

import "strings"

// ChannelClass 门店分类：依附型（百货/商场等）或独立店
type ChannelClass string

const (
	ClassNone       ChannelClass = ""
	ClassTypeBased  ChannelClass = "Type-based"
	ClassStandalone ChannelClass = "Standalone"
)

// TypeBasedChannels 依附于其他场所的渠道
var TypeBasedChannels = []string{"Department Store", "Mall", "Duty Free", "Premium Outlet"}

// StandaloneChannels 独立门店渠道
var StandaloneChannels = []string{"FS", "Pop-up", "Haus"}

// ClassifyChannel 渠道名 → 门店分类，不在两张表中的渠道没有分类
func ClassifyChannel(channel string) ChannelClass {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return ClassNone
	}
	for _, c := range TypeBasedChannels {
		if c == channel {
			return ClassTypeBased
		}
	}
	for _, c := range StandaloneChannels {
		if c == channel {
			return ClassStandalone
		}
	}
	return ClassNone
}

// ParseClass 解析分类筛选值，ALL/空 返回 ok=false
func ParseClass(label string) (ChannelClass, bool) {
	if IsAll(label) {
		return ClassNone, false
	}
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "type-based", "typebased", "type_based":
		return ClassTypeBased, true
	case "standalone":
		return ClassStandalone, true
	}
	// 无法识别的分类不会匹配任何门店
	return ChannelClass(label), true
}
