package solver

import (
	"fmt"

	"planboard/internal/model"
)

// Totals 排产方案在三项目标上的原始合计（未做单位换算）
type Totals struct {
	Turnover     float64 `json:"turnover"`
	Cost         float64 `json:"cost"`
	Productivity float64 `json:"productivity"`
}

// Evaluate 计算排产方案的三项目标合计
// Z1=Σ turnover_i·x_i，Z2=Σ cost_i·x_i，Z3=Σ productivity_i·x_i
// 纯函数，仅在长度不一致时报错
func Evaluate(turnover, cost, productivity []float64, plan []int) (Totals, error) {
	n := len(plan)
	if len(turnover) != n || len(cost) != n || len(productivity) != n {
		return Totals{}, fmt.Errorf("序列长度不一致: plan=%d turnover=%d cost=%d productivity=%d",
			n, len(turnover), len(cost), len(productivity))
	}
	if n != model.MonthCount {
		return Totals{}, fmt.Errorf("排产方案长度为 %d，应为 %d", n, model.MonthCount)
	}

	var t Totals
	for i, x := range plan {
		t.Turnover += turnover[i] * float64(x)
		t.Cost += cost[i] * float64(x)
		t.Productivity += productivity[i] * float64(x)
	}
	return t, nil
}
