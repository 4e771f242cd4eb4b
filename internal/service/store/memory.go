package store

import (
	"errors"
	"sync"

	"planboard/internal/model"
)

// MemoryStore 会话内存存储
// 持有当前数据集、比较矩阵、AHP快照与各策略结果槽位；不跨会话持久化
type MemoryStore struct {
	dataset *model.PlanDataset
	matrix  *model.PairwiseMatrix
	ahp     *model.AHPSnapshot
	results map[model.StrategyKey]*model.StrategyResult
	mu      sync.RWMutex
}

// NewMemoryStore 创建内存存储并载入内置默认数据
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		dataset: model.DefaultDataset(),
		matrix:  model.DefaultPairwiseMatrix(),
		results: make(map[model.StrategyKey]*model.StrategyResult),
	}
}

// GetDataset 获取当前数据集快照
func (s *MemoryStore) GetDataset() *model.PlanDataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset.Clone()
}

// SetDataset 整体替换数据集（导入成功后原子切换）
func (s *MemoryStore) SetDataset(d *model.PlanDataset) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = d.Clone()
	return nil
}

// AdjustSeries 单步调整某序列某月的数值
// direction 取 +1/-1，步长由序列决定，结果不低于0；返回调整后的值
func (s *MemoryStore) AdjustSeries(key model.SeriesKey, month, direction int) (float64, error) {
	if month < 0 || month >= model.MonthCount {
		return 0, errors.New("月份下标越界")
	}
	if direction != 1 && direction != -1 {
		return 0, errors.New("direction 只能为 1 或 -1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	series, err := s.dataset.Series(key)
	if err != nil {
		return 0, err
	}

	v := series[month] + float64(direction)*model.EditStep(key)
	if v < 0 {
		v = 0
	}
	series[month] = v
	return v, nil
}

// ResetDataset 恢复内置默认数据集并清空结果槽位
func (s *MemoryStore) ResetDataset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = model.DefaultDataset()
	s.results = make(map[model.StrategyKey]*model.StrategyResult)
}

// GetMatrix 获取比较矩阵快照
func (s *MemoryStore) GetMatrix() *model.PairwiseMatrix {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matrix.Clone()
}

// UpdateMatrixCell 更新比较矩阵单元格（自动维护互反性）
func (s *MemoryStore) UpdateMatrixCell(row, col int, value float64) (*model.PairwiseMatrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.matrix.Set(row, col, value); err != nil {
		return nil, err
	}
	return s.matrix.Clone(), nil
}

// GetAHP 获取AHP快照（可能为nil，表示尚未计算）
func (s *MemoryStore) GetAHP() *model.AHPSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ahp == nil {
		return nil
	}
	snapshot := *s.ahp
	snapshot.Weights = append([]float64(nil), s.ahp.Weights...)
	return &snapshot
}

// SetAHP 保存AHP快照
func (s *MemoryStore) SetAHP(snapshot *model.AHPSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *snapshot
	copied.Weights = append([]float64(nil), snapshot.Weights...)
	s.ahp = &copied
}

// SetResult 写入策略结果（只覆盖自己的槽位，其余策略结果保留）
func (s *MemoryStore) SetResult(result *model.StrategyResult) error {
	if !result.Strategy.Valid() {
		return errors.New("未知的策略标识")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.Strategy] = result
	return nil
}

// GetResult 获取某策略的结果（不存在时返回nil）
func (s *MemoryStore) GetResult(key model.StrategyKey) *model.StrategyResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results[key]
}

// AllResults 按固定策略顺序返回已有结果
func (s *MemoryStore) AllResults() []*model.StrategyResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.StrategyResult, 0, len(s.results))
	for _, key := range model.StrategyKeys {
		if r, ok := s.results[key]; ok {
			out = append(out, r)
		}
	}
	return out
}
