package model

import (
	"fmt"
	"math"
)

// CriteriaCount 决策准则数量（营业额/成本/生产率）
const CriteriaCount = 3

// CriteriaLabels 准则显示标签
var CriteriaLabels = []string{"营业额", "成本", "生产率"}

// PairwiseMatrix 准则两两比较矩阵
// 不变式：对角线恒为1；设置 (i,j)=v 时自动令 (j,i)=1/v
type PairwiseMatrix struct {
	Cells [][]float64 `json:"cells"`
}

// NewPairwiseMatrix 以给定元素创建比较矩阵（拷贝输入）
func NewPairwiseMatrix(cells [][]float64) *PairwiseMatrix {
	m := &PairwiseMatrix{Cells: make([][]float64, len(cells))}
	for i, row := range cells {
		m.Cells[i] = append([]float64(nil), row...)
	}
	return m
}

// Clone 深拷贝矩阵
func (m *PairwiseMatrix) Clone() *PairwiseMatrix {
	return NewPairwiseMatrix(m.Cells)
}

// Set 设置单元格并维护互反性
// 非法输入（非正数、NaN、Inf）按1处理；对角线忽略写入
func (m *PairwiseMatrix) Set(row, col int, value float64) error {
	n := len(m.Cells)
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("矩阵下标越界: (%d,%d)", row, col)
	}
	if row == col {
		m.Cells[row][col] = 1
		return nil
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		value = 1
	}
	m.Cells[row][col] = value
	m.Cells[col][row] = 1 / value
	return nil
}
