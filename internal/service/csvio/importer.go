// Package csvio 负责计划数据集的CSV导入与排产结果的CSV导出。
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"planboard/internal/model"
)

// Importer CSV导入器
type Importer struct{}

// NewImporter 创建导入器
func NewImporter() *Importer {
	return &Importer{}
}

// Parse 解析CSV并在 base 的副本上应用
// 首行为表头，按大小写不敏感的关键字匹配列归属；之后最多消费12行数据，
// 多余的行忽略，不足12行时其余月份保留 base 原值。无法解析的单元格按0
// 处理。任何读取错误都整体失败，不产生半更新的数据集。
func (im *Importer) Parse(reader io.Reader, base *model.PlanDataset) (*model.PlanDataset, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	mapping := MapColumns(header)
	if len(mapping) == 0 {
		return nil, fmt.Errorf("表头未匹配到任何数据列")
	}

	dataset := base.Clone()

	for month := 0; month < model.MonthCount; month++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取第%d数据行失败: %w", month+1, err)
		}

		for col, key := range mapping {
			if col >= len(record) {
				continue
			}
			series, err := dataset.Series(key)
			if err != nil {
				continue
			}
			series[month] = parseCell(record[col])
		}
	}

	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	return dataset, nil
}

// MapColumns 按关键字将表头列映射到数据序列
// 匹配顺序即优先级；同一序列出现多列时首列胜出
func MapColumns(header []string) map[int]model.SeriesKey {
	mapping := make(map[int]model.SeriesKey)
	taken := make(map[model.SeriesKey]bool)

	for idx, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if name == "" {
			continue
		}

		key, ok := matchColumn(name)
		if !ok || taken[key] {
			continue
		}
		mapping[idx] = key
		taken[key] = true
	}
	return mapping
}

// matchColumn 单列关键字匹配
func matchColumn(name string) (model.SeriesKey, bool) {
	switch {
	case strings.Contains(name, "turnover") || strings.Contains(name, "sales"):
		return model.SeriesTurnover, true
	case strings.Contains(name, "cost"):
		return model.SeriesCost, true
	case strings.Contains(name, "product"):
		return model.SeriesProductivity, true
	case strings.Contains(name, "order"):
		return model.SeriesOrders, true
	case strings.Contains(name, "capacity") || strings.Contains(name, "cap"):
		return model.SeriesCapacity, true
	}
	return "", false
}

// parseCell 单元格取值，解析失败按0，且不允许负值
func parseCell(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
