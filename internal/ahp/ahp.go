// Package ahp 实现层次分析法（AHP）的权重推导与一致性检验。
package ahp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConsistencyThreshold 一致性比率的常用判定阈值
// 判定本身属于调用方策略，引擎只负责给出精确的CR
const ConsistencyThreshold = 0.10

// randomIndex Saaty随机一致性指标表
var randomIndex = map[int]float64{1: 0, 2: 0, 3: 0.58, 4: 0.90, 5: 1.12}

// randomIndexLarge 阶数大于5时使用的RI
const randomIndexLarge = 1.24

// Result AHP计算结果
type Result struct {
	Weights   []float64 `json:"weights"`
	LambdaMax float64   `json:"lambdaMax"`
	CI        float64   `json:"ci"`
	CR        float64   `json:"cr"`
}

// Consistent 按常用阈值判断矩阵是否一致
func (r *Result) Consistent() bool {
	return r.CR < ConsistencyThreshold
}

// EqualWeights 等权兜底向量（引擎出错时由调用方自行决定是否采用）
func EqualWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

// ComputeWeights 由两两比较矩阵推导准则权重
// 算法：列和归一化 -> 行均值为权重 -> (A·w)_i/w_i 的均值估计λmax ->
// CI=(λmax-n)/(n-1) -> CR=CI/RI，最后将权重重新归一化使和恰为1
func ComputeWeights(matrix [][]float64) (*Result, error) {
	n := len(matrix)
	if n == 0 {
		return nil, fmt.Errorf("比较矩阵为空")
	}
	data := make([]float64, 0, n*n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("比较矩阵不是方阵: 第%d行长度为%d，应为%d", i+1, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("比较矩阵含非法数值: (%d,%d)", i+1, j+1)
			}
			if v <= 0 {
				return nil, fmt.Errorf("比较矩阵元素必须为正数: (%d,%d)=%v", i+1, j+1, v)
			}
			data = append(data, v)
		}
	}

	a := mat.NewDense(n, n, data)

	// 列和归一化
	norm := mat.NewDense(n, n, nil)
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		mat.Col(col, j, a)
		sum := floats.Sum(col)
		if sum == 0 {
			sum = 1
		}
		for i := 0; i < n; i++ {
			norm.Set(i, j, a.At(i, j)/sum)
		}
	}

	// 行均值即准则权重
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		weights[i] = floats.Sum(norm.RawRowView(i)) / float64(n)
	}

	// 主特征值估计
	var aw mat.VecDense
	aw.MulVec(a, mat.NewVecDense(n, append([]float64(nil), weights...)))
	ratioSum := 0.0
	for i := 0; i < n; i++ {
		wi := weights[i]
		if wi == 0 {
			wi = 1
		}
		ratioSum += aw.AtVec(i) / wi
	}
	lambdaMax := ratioSum / float64(n)

	ci := 0.0
	if n > 1 {
		ci = (lambdaMax - float64(n)) / (float64(n) - 1)
	}

	ri := randomIndexLarge
	if v, ok := randomIndex[n]; ok {
		ri = v
	}
	cr := 0.0
	if ri > 0 {
		cr = ci / ri
	}

	// 消除浮点残差，保证权重和恰为1
	if total := floats.Sum(weights); total > 0 {
		floats.Scale(1/total, weights)
	}

	return &Result{
		Weights:   weights,
		LambdaMax: lambdaMax,
		CI:        ci,
		CR:        cr,
	}, nil
}
