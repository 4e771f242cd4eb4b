package model

import "fmt"

// MonthCount 计划周期数（12个自然月）
const MonthCount = 12

// TurnoverUnitScale 营业额系数单位换算
// 数据集中的营业额系数以千元记录，报告金额时需乘以该常量
const TurnoverUnitScale = 1000.0

// 单步编辑幅度
// 生产率系数的名义幅度是其他序列的十倍（有意为之，非笔误）
const (
	EditStepDefault      = 10.0
	EditStepProductivity = 100.0
)

// SeriesKey 数据序列标识
type SeriesKey string

const (
	SeriesTurnover     SeriesKey = "turnover"     // 营业额系数（千元/件）
	SeriesCost         SeriesKey = "cost"         // 成本系数（元/件）
	SeriesProductivity SeriesKey = "productivity" // 生产率系数
	SeriesOrders       SeriesKey = "orders"       // 订单量（月下界）
	SeriesCapacity     SeriesKey = "capacity"     // 产能（月上界）
)

// MonthLabels 月份显示标签
var MonthLabels = []string{
	"1月", "2月", "3月", "4月", "5月", "6月",
	"7月", "8月", "9月", "10月", "11月", "12月",
}

// PlanDataset 计划数据集：五条对齐的12月序列
type PlanDataset struct {
	Turnover     []float64 `json:"turnover"`
	Cost         []float64 `json:"cost"`
	Productivity []float64 `json:"productivity"`
	Orders       []float64 `json:"orders"`
	Capacity     []float64 `json:"capacity"`
}

// Validate 校验五条序列长度一致且均为12
func (d *PlanDataset) Validate() error {
	for key, s := range map[SeriesKey][]float64{
		SeriesTurnover:     d.Turnover,
		SeriesCost:         d.Cost,
		SeriesProductivity: d.Productivity,
		SeriesOrders:       d.Orders,
		SeriesCapacity:     d.Capacity,
	} {
		if len(s) != MonthCount {
			return fmt.Errorf("序列 %s 长度为 %d，应为 %d", key, len(s), MonthCount)
		}
	}
	return nil
}

// Clone 深拷贝数据集
func (d *PlanDataset) Clone() *PlanDataset {
	return &PlanDataset{
		Turnover:     append([]float64(nil), d.Turnover...),
		Cost:         append([]float64(nil), d.Cost...),
		Productivity: append([]float64(nil), d.Productivity...),
		Orders:       append([]float64(nil), d.Orders...),
		Capacity:     append([]float64(nil), d.Capacity...),
	}
}

// Series 按标识取序列（返回内部切片，调用方负责并发保护）
func (d *PlanDataset) Series(key SeriesKey) ([]float64, error) {
	switch key {
	case SeriesTurnover:
		return d.Turnover, nil
	case SeriesCost:
		return d.Cost, nil
	case SeriesProductivity:
		return d.Productivity, nil
	case SeriesOrders:
		return d.Orders, nil
	case SeriesCapacity:
		return d.Capacity, nil
	default:
		return nil, fmt.Errorf("未知的数据序列: %s", key)
	}
}

// EditStep 序列对应的单步编辑幅度
func EditStep(key SeriesKey) float64 {
	if key == SeriesProductivity {
		return EditStepProductivity
	}
	return EditStepDefault
}
