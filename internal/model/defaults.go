package model

// DefaultWeights 多目标策略在AHP尚未计算时使用的兜底权重
var DefaultWeights = []float64{0.132, 0.612, 0.256}

// DefaultDataset 内置示例数据集（启动时载入）
func DefaultDataset() *PlanDataset {
	return &PlanDataset{
		Turnover:     []float64{120, 135, 128, 142, 150, 138, 145, 160, 152, 148, 155, 165},
		Cost:         []float64{85, 88, 82, 90, 95, 87, 89, 98, 92, 91, 94, 99},
		Productivity: []float64{1200, 1150, 1250, 1300, 1280, 1220, 1260, 1350, 1310, 1290, 1330, 1400},
		Orders:       []float64{420, 450, 430, 470, 500, 460, 480, 520, 490, 475, 505, 540},
		Capacity:     []float64{650, 680, 660, 700, 740, 690, 720, 770, 730, 710, 750, 800},
	}
}

// DefaultPairwiseMatrix 内置默认比较矩阵
func DefaultPairwiseMatrix() *PairwiseMatrix {
	return NewPairwiseMatrix([][]float64{
		{1, 0.2, 0.333},
		{5, 1, 5},
		{3, 0.2, 1},
	})
}
