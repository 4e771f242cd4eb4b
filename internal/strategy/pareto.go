package strategy

import (
	"sort"

	"planboard/internal/model"
)

// ParetoPoints 由当前结果集生成帕累托散点
// 数值换算为百万，按营业额升序排列以便前端连线；非支配点标记在前沿上
func (o *Orchestrator) ParetoPoints() []model.ParetoPoint {
	results := o.store.AllResults()

	points := make([]model.ParetoPoint, 0, len(results))
	for _, r := range results {
		points = append(points, model.ParetoPoint{
			Strategy:      r.Strategy,
			Label:         model.StrategyLabels[r.Strategy],
			TurnoverM:     r.Totals.Turnover / 1e6,
			CostM:         r.Totals.Cost / 1e6,
			ProductivityM: r.Totals.Productivity / 1e6,
		})
	}

	// O(n²) 支配检查，点数最多为策略数，开销可忽略
	for i := range points {
		dominated := false
		for j := range points {
			if i != j && dominates(points[j], points[i]) {
				dominated = true
				break
			}
		}
		points[i].OnFrontier = !dominated
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].TurnoverM < points[j].TurnoverM
	})
	return points
}

// dominates 判断 a 是否支配 b
// 营业额、生产率越高越好，成本越低越好；须全不差且至少一项严格更优
func dominates(a, b model.ParetoPoint) bool {
	if a.TurnoverM < b.TurnoverM || a.CostM > b.CostM || a.ProductivityM < b.ProductivityM {
		return false
	}
	return a.TurnoverM > b.TurnoverM || a.CostM < b.CostM || a.ProductivityM > b.ProductivityM
}
