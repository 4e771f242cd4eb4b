package model

// StrategyKey 优化策略标识
type StrategyKey string

const (
	StrategyTurnover       StrategyKey = "turnover"       // 营业额最大化
	StrategyCost           StrategyKey = "cost"           // 成本最小化
	StrategyProductivity   StrategyKey = "productivity"   // 生产率最大化
	StrategyMultiObjective StrategyKey = "multiObjective" // AHP加权多目标
)

// StrategyKeys 全部策略（固定顺序，用于遍历与展示）
var StrategyKeys = []StrategyKey{
	StrategyTurnover,
	StrategyCost,
	StrategyProductivity,
	StrategyMultiObjective,
}

// StrategyLabels 策略显示标签
var StrategyLabels = map[StrategyKey]string{
	StrategyTurnover:       "营业额最大化",
	StrategyCost:           "成本最小化",
	StrategyProductivity:   "生产率最大化",
	StrategyMultiObjective: "多目标加权",
}

// Valid 判断策略标识是否合法
func (k StrategyKey) Valid() bool {
	switch k {
	case StrategyTurnover, StrategyCost, StrategyProductivity, StrategyMultiObjective:
		return true
	}
	return false
}

// ObjectiveTotals 三项目标的报告口径合计
// 营业额已按 TurnoverUnitScale 换算为元
type ObjectiveTotals struct {
	Turnover     float64 `json:"turnover"`
	Cost         float64 `json:"cost"`
	Productivity float64 `json:"productivity"`
}

// Improvements 相对基准方案（按单足额排产）的改善百分比
// 成本取反向：低于基准记为正改善
type Improvements struct {
	Turnover     float64 `json:"turnover"`
	Cost         float64 `json:"cost"`
	Productivity float64 `json:"productivity"`
}

// StrategyResult 单次策略求解结果（创建后不再修改）
type StrategyResult struct {
	Strategy     StrategyKey     `json:"strategy"`
	Plan         []int           `json:"plan"`
	Objective    float64         `json:"objective"`
	Totals       ObjectiveTotals `json:"totals"`
	Baseline     ObjectiveTotals `json:"baseline"`
	Improvements *Improvements   `json:"improvements,omitempty"`
	Weights      []float64       `json:"weights,omitempty"`
}

// AHPSnapshot AHP计算结果快照（整体生成，不做部分更新）
type AHPSnapshot struct {
	Weights    []float64 `json:"weights"`
	LambdaMax  float64   `json:"lambdaMax"`
	CI         float64   `json:"ci"`
	CR         float64   `json:"cr"`
	Consistent bool      `json:"consistent"`
	Fallback   bool      `json:"fallback"` // 是否为默认权重兜底（AHP尚未计算时）
}

// ParetoPoint 帕累托散点（单位：百万）
type ParetoPoint struct {
	Strategy      StrategyKey `json:"strategy"`
	Label         string      `json:"label"`
	TurnoverM     float64     `json:"turnoverM"`
	CostM         float64     `json:"costM"`
	ProductivityM float64     `json:"productivityM"`
	OnFrontier    bool        `json:"onFrontier"`
}
