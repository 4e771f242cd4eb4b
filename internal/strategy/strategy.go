// Package strategy 将AHP权重、排产启发式与目标评估编排为四种优化策略。
package strategy

import (
	"fmt"
	"math"

	"planboard/internal/model"
	"planboard/internal/service/store"
	"planboard/internal/solver"
)

// Orchestrator 策略编排器
// 每次运行读取一次会话快照，失败时不影响已存结果
type Orchestrator struct {
	store  *store.MemoryStore
	solver *solver.Solver
}

// NewOrchestrator 创建编排器
func NewOrchestrator(st *store.MemoryStore, sv *solver.Solver) *Orchestrator {
	return &Orchestrator{store: st, solver: sv}
}

// Run 运行单个策略并写入其结果槽位
func (o *Orchestrator) Run(key model.StrategyKey) (*model.StrategyResult, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("未知的策略: %s", key)
	}

	dataset := o.store.GetDataset()
	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	coeffs, maximize, mode, weights, err := o.buildObjective(key, dataset)
	if err != nil {
		return nil, err
	}

	allocation, err := o.solver.Allocate(coeffs, dataset.Orders, dataset.Capacity, maximize, mode)
	if err != nil {
		return nil, err
	}

	// 合成系数只用于排序取值，报告口径一律由评估器重算
	totals, err := reportedTotals(dataset, allocation.Plan)
	if err != nil {
		return nil, err
	}

	baseline, err := baselineTotals(dataset)
	if err != nil {
		return nil, err
	}

	result := &model.StrategyResult{
		Strategy:  key,
		Plan:      allocation.Plan,
		Objective: allocation.Objective,
		Totals:    totals,
		Baseline:  baseline,
		Improvements: &model.Improvements{
			Turnover:     improvementPct(totals.Turnover, baseline.Turnover, false),
			Cost:         improvementPct(totals.Cost, baseline.Cost, true),
			Productivity: improvementPct(totals.Productivity, baseline.Productivity, false),
		},
		Weights: weights,
	}

	if err := o.store.SetResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// buildObjective 按策略构造系数向量与求解参数
func (o *Orchestrator) buildObjective(key model.StrategyKey, d *model.PlanDataset) ([]float64, bool, solver.Mode, []float64, error) {
	switch key {
	case model.StrategyTurnover:
		return append([]float64(nil), d.Turnover...), true, solver.ModeAggressive, nil, nil

	case model.StrategyCost:
		coeffs := make([]float64, len(d.Cost))
		for i, c := range d.Cost {
			coeffs[i] = -c
		}
		return coeffs, false, solver.ModeConservative, nil, nil

	case model.StrategyProductivity:
		return append([]float64(nil), d.Productivity...), true, solver.ModeBalanced, nil, nil

	case model.StrategyMultiObjective:
		weights := o.currentWeights()
		coeffs := make([]float64, model.MonthCount)
		for i := 0; i < model.MonthCount; i++ {
			coeffs[i] = weights[0]*d.Turnover[i]*model.TurnoverUnitScale -
				weights[1]*d.Cost[i]*model.TurnoverUnitScale +
				weights[2]*d.Productivity[i]
		}
		return coeffs, true, solver.ModeBalanced, weights, nil
	}
	return nil, false, solver.ModeBalanced, nil, fmt.Errorf("未知的策略: %s", key)
}

// currentWeights 取当前AHP权重；尚未计算时落到默认权重并回写快照，
// 保证后续展示与本次求解口径一致
func (o *Orchestrator) currentWeights() []float64 {
	if snapshot := o.store.GetAHP(); snapshot != nil && len(snapshot.Weights) == model.CriteriaCount {
		return snapshot.Weights
	}

	weights := append([]float64(nil), model.DefaultWeights...)
	o.store.SetAHP(&model.AHPSnapshot{
		Weights:    weights,
		Consistent: true,
		Fallback:   true,
	})
	return weights
}

// reportedTotals 评估排产方案，营业额换算为元
func reportedTotals(d *model.PlanDataset, plan []int) (model.ObjectiveTotals, error) {
	raw, err := solver.Evaluate(d.Turnover, d.Cost, d.Productivity, plan)
	if err != nil {
		return model.ObjectiveTotals{}, err
	}
	return model.ObjectiveTotals{
		Turnover:     raw.Turnover * model.TurnoverUnitScale,
		Cost:         raw.Cost,
		Productivity: raw.Productivity,
	}, nil
}

// baselineTotals 基准方案：逐月恰好满足订单量
func baselineTotals(d *model.PlanDataset) (model.ObjectiveTotals, error) {
	plan := make([]int, model.MonthCount)
	for i, v := range d.Orders {
		plan[i] = int(math.Round(v))
	}
	return reportedTotals(d, plan)
}

// improvementPct 相对基准的改善百分比
// 基准为0时按0处理，不让 NaN/Inf 进入展示层；invert 用于越小越好的指标
func improvementPct(actual, baseline float64, invert bool) float64 {
	if baseline == 0 {
		return 0
	}
	if invert {
		return (baseline - actual) / baseline * 100
	}
	return (actual - baseline) / baseline * 100
}
