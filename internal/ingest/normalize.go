package ingest

import (
	"errors"
	"fmt"
	"strings"

	"pipelineboard/internal/model"
)

// ErrMissingID 记录缺少 id
var ErrMissingID = errors.New("store record has no id")

// Normalize 将原始记录转换为规范化门店记录
// 旧字段只在这里处理：ChangOpenDate 优先于 openDate，合同起始日作为预计日期兜底
func Normalize(raw RawStore) (model.Store, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return model.Store{}, ErrMissingID
	}

	s := model.Store{
		ID:          id,
		Name:        strings.TrimSpace(raw.Name),
		Brand:       strings.TrimSpace(raw.Brand),
		ChannelType: strings.TrimSpace(raw.Type),
		Location: model.Location{
			City:    strings.TrimSpace(raw.Location.City),
			Country: strings.TrimSpace(raw.Location.Country),
			Lat:     raw.Location.Lat,
			Lng:     raw.Location.Lng,
		},
		Stage:     model.NormalizeStage(raw.Status),
		RawStage:  raw.Status,
		StageYear: raw.StatusYear,
		Area:      raw.Area,
	}

	openDate := model.CanonicalDate(strings.TrimSpace(raw.ChangOpenDate))
	if openDate == "" {
		openDate = model.CanonicalDate(strings.TrimSpace(raw.OpenDate))
	}
	s.OpenDate = openDate
	if raw.Contract != nil {
		s.ContractDate = model.CanonicalDate(strings.TrimSpace(raw.Contract.StartDate))
	}

	switch model.BrandCategory(strings.ToLower(strings.TrimSpace(raw.BrandCategory))) {
	case model.CategoryHouse:
		s.Category = model.CategoryHouse
	case model.CategoryCompetitor:
		s.Category = model.CategoryCompetitor
	case model.CategoryPreferred:
		s.Category = model.CategoryPreferred
	default:
		if model.IsHouseBrand(s.Brand) {
			s.Category = model.CategoryHouse
		}
	}

	if raw.Financial != nil {
		f := &model.Financial{
			Currency:        strings.ToUpper(strings.TrimSpace(raw.Financial.Currency)),
			MonthlyRent:     raw.Financial.MonthlyRent,
			MonthlySales:    raw.Financial.MonthlySales,
			Investment:      raw.Financial.Investment,
			Deposit:         raw.Financial.Deposit,
			RentType:        raw.Financial.RentType,
			EstimatedSales:  raw.Financial.EstimatedSales,
			EstimatedMargin: raw.Financial.EstimatedMargin,
		}
		for _, ys := range raw.Financial.YearlySales {
			f.YearlySales = append(f.YearlySales, model.YearlySales{Year: ys.Year, Amount: ys.Amount})
		}
		s.Financial = f
	}

	return s, nil
}

// NormalizeAll 批量规范化，id 重复时报错
func NormalizeAll(raws []RawStore) ([]model.Store, error) {
	out := make([]model.Store, 0, len(raws))
	seen := make(map[string]int, len(raws))
	for i, raw := range raws {
		s, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if prev, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("duplicate store id %q (records %d and %d)", s.ID, prev+1, i+1)
		}
		seen[s.ID] = i
		out = append(out, s)
	}
	return out, nil
}
