package ingest

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pipelineboard/internal/model"
)

//go:embed stores.yaml
var seedYAML []byte

// Dataset 规范化后的数据集：门店 + 两份参考品牌列表
type Dataset struct {
	Stores           []model.Store
	CompetitorBrands []model.BrandDefinition
	PreferredBrands  []model.BrandDefinition
}

type rawDataset struct {
	Stores           []RawStore              `yaml:"stores"`
	CompetitorBrands []model.BrandDefinition `yaml:"competitorBrands"`
	PreferredBrands  []model.BrandDefinition `yaml:"preferredBrands"`
}

// LoadSeed 加载内置样例数据
func LoadSeed() (*Dataset, error) {
	ds, err := Parse(seedYAML)
	if err != nil {
		return nil, fmt.Errorf("parse embedded seed: %w", err)
	}
	return ds, nil
}

// LoadFile 从 YAML 文件加载数据集
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

// LoadDataset path 为空时加载内置样例，否则读取 YAML 文件
func LoadDataset(path string) (*Dataset, error) {
	if path == "" {
		return LoadSeed()
	}
	return LoadFile(path)
}

// DatasetSource 数据集来源名（写入导入日志）
func DatasetSource(path string) string {
	if path == "" {
		return "seed"
	}
	return path
}

// Parse 解析 YAML 数据集并规范化
func Parse(data []byte) (*Dataset, error) {
	var raw rawDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	stores, err := NormalizeAll(raw.Stores)
	if err != nil {
		return nil, err
	}
	return &Dataset{
		Stores:           stores,
		CompetitorBrands: raw.CompetitorBrands,
		PreferredBrands:  raw.PreferredBrands,
	}, nil
}
