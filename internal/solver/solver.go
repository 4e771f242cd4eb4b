// Package solver 实现带边界约束的排产启发式。
//
// 这是单趟逐月的贪心规则，不是真正的线性规划求解器：
// O(n)、确定性、对系数排序单调，但不保证全局最优。
package solver

import (
	"fmt"
	"math"

	"planboard/internal/model"
)

// Mode 排产风格
type Mode int

const (
	ModeAggressive   Mode = iota // 激进：目标值随系数排名快速上浮
	ModeConservative             // 保守：贴近下界，忽略排名
	ModeBalanced                 // 均衡：排名线性映射到区间中上段
)

// String 返回风格标识
func (m Mode) String() string {
	switch m {
	case ModeAggressive:
		return "aggressive"
	case ModeConservative:
		return "conservative"
	case ModeBalanced:
		return "balanced"
	}
	return "unknown"
}

// Allocation 一次求解得到的排产方案（创建后不再修改）
type Allocation struct {
	Plan      []int   `json:"plan"`
	Objective float64 `json:"objective"`
}

// Solver 排产求解器，持有固定的累计产能上限表
type Solver struct {
	ceilings []float64
}

// New 创建求解器
// 上限表必须是12个严格递增的正数（代表各月末的全厂累计吞吐上限）
func New(ceilings []float64) (*Solver, error) {
	if len(ceilings) != model.MonthCount {
		return nil, fmt.Errorf("累计上限表长度为 %d，应为 %d", len(ceilings), model.MonthCount)
	}
	prev := 0.0
	for i, c := range ceilings {
		if c <= prev {
			return nil, fmt.Errorf("累计上限表必须严格递增: 第%d项 %v", i+1, c)
		}
		prev = c
	}
	return &Solver{ceilings: append([]float64(nil), ceilings...)}, nil
}

// Allocate 逐月贪心生成排产方案
//
// 每月按系数归一化排名在 [lower, upper] 内取目标值，受累计上限约束后
// 取整。minimize 模式统一使用 lower + (upper-lower)*(1-r)，覆盖三种风格
// 各自的公式，属有意保留的行为：保守风格在 minimize 下不会到达其字面
// 上的0.15目标。当 upper < lower 时，最终钳制顺序为先上界后下界，下界胜出。
func (s *Solver) Allocate(coeffs, lower, upper []float64, maximize bool, mode Mode) (*Allocation, error) {
	n := len(coeffs)
	if n != model.MonthCount {
		return nil, fmt.Errorf("系数序列长度为 %d，应为 %d", n, model.MonthCount)
	}
	if len(lower) != n || len(upper) != n {
		return nil, fmt.Errorf("边界序列长度不一致: coeffs=%d lower=%d upper=%d", n, len(lower), len(upper))
	}

	// 共享归一化尺度，下限1避免除零；全零系数时排名统一为0.5
	maxAbs := 1.0
	for _, c := range coeffs {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}

	plan := make([]int, 0, n)
	running := 0.0
	for i := 0; i < n; i++ {
		r := (coeffs[i]/maxAbs + 1) / 2
		span := upper[i] - lower[i]

		var target float64
		if !maximize {
			target = lower[i] + span*(1-r)
		} else {
			switch mode {
			case ModeAggressive:
				target = lower[i] + span*math.Pow(r, 0.8)
			case ModeConservative:
				target = lower[i] + span*0.15
			default:
				target = lower[i] + span*(0.35+0.5*r)
			}
		}

		// 累计上限：超出时压回，但不低于当月下界
		if running+target > s.ceilings[i] {
			target = math.Max(lower[i], s.ceilings[i]-running)
		}

		target = math.Min(target, upper[i])
		target = math.Max(target, lower[i])

		v := int(math.Round(target))
		plan = append(plan, v)
		running += float64(v)
	}

	objective := 0.0
	for i, v := range plan {
		objective += coeffs[i] * float64(v)
	}

	return &Allocation{Plan: plan, Objective: objective}, nil
}
