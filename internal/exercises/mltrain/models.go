package mltrain

import (
	"math"
	"sort"
)

// Classifier is the common surface of the two models in the comparison.
type Classifier interface {
	Name() string
	Fit(X [][]float64, y []int)
	Predict(x []float64) int
}

// LogisticRegression is a binary classifier trained with full-batch
// gradient descent. Inputs are expected to be standardized.
type LogisticRegression struct {
	LearningRate float64
	Epochs       int

	weights []float64
	bias    float64
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{LearningRate: 0.1, Epochs: 500}
}

func (m *LogisticRegression) Name() string { return "logistic regression" }

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func (m *LogisticRegression) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	nFeatures := len(X[0])
	m.weights = make([]float64, nFeatures)
	m.bias = 0

	n := float64(len(X))
	gradW := make([]float64, nFeatures)
	for epoch := 0; epoch < m.Epochs; epoch++ {
		for j := range gradW {
			gradW[j] = 0
		}
		gradB := 0.0

		for i, row := range X {
			pred := sigmoid(m.decision(row))
			err := pred - float64(y[i])
			for j, v := range row {
				gradW[j] += err * v
			}
			gradB += err
		}

		for j := range m.weights {
			m.weights[j] -= m.LearningRate * gradW[j] / n
		}
		m.bias -= m.LearningRate * gradB / n
	}
}

func (m *LogisticRegression) decision(x []float64) float64 {
	z := m.bias
	for j, w := range m.weights {
		z += w * x[j]
	}
	return z
}

// PredictProba returns the probability of the positive class.
func (m *LogisticRegression) PredictProba(x []float64) float64 {
	return sigmoid(m.decision(x))
}

func (m *LogisticRegression) Predict(x []float64) int {
	if m.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

// DecisionTree is a depth-limited CART classifier using Gini impurity.
type DecisionTree struct {
	MaxDepth   int
	MinSamples int
	root       *treeNode
}

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      bool
	class     int
}

func NewDecisionTree() *DecisionTree {
	return &DecisionTree{MaxDepth: 5, MinSamples: 10}
}

func (m *DecisionTree) Name() string { return "decision tree" }

func (m *DecisionTree) Fit(X [][]float64, y []int) {
	m.root = m.grow(X, y, 0)
}

func (m *DecisionTree) Predict(x []float64) int {
	node := m.root
	for node != nil && !node.leaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	if node == nil {
		return 0
	}
	return node.class
}

func (m *DecisionTree) grow(X [][]float64, y []int, depth int) *treeNode {
	if len(y) == 0 {
		return &treeNode{leaf: true, class: 0}
	}
	majority := majorityClass(y)
	if depth >= m.MaxDepth || len(y) < m.MinSamples || gini(y) == 0 {
		return &treeNode{leaf: true, class: majority}
	}

	feature, threshold, ok := bestSplit(X, y)
	if !ok {
		return &treeNode{leaf: true, class: majority}
	}

	var leftX, rightX [][]float64
	var leftY, rightY []int
	for i, row := range X {
		if row[feature] <= threshold {
			leftX = append(leftX, row)
			leftY = append(leftY, y[i])
		} else {
			rightX = append(rightX, row)
			rightY = append(rightY, y[i])
		}
	}
	if len(leftY) == 0 || len(rightY) == 0 {
		return &treeNode{leaf: true, class: majority}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      m.grow(leftX, leftY, depth+1),
		right:     m.grow(rightX, rightY, depth+1),
	}
}

func gini(y []int) float64 {
	if len(y) == 0 {
		return 0
	}
	var positives int
	for _, label := range y {
		if label == 1 {
			positives++
		}
	}
	p := float64(positives) / float64(len(y))
	return 2 * p * (1 - p)
}

func majorityClass(y []int) int {
	var positives int
	for _, label := range y {
		if label == 1 {
			positives++
		}
	}
	if positives*2 > len(y) {
		return 1
	}
	return 0
}

// bestSplit scans every feature and every midpoint between adjacent
// distinct values, picking the split with the lowest weighted Gini.
func bestSplit(X [][]float64, y []int) (feature int, threshold float64, ok bool) {
	best := math.Inf(1)
	nFeatures := len(X[0])

	for f := 0; f < nFeatures; f++ {
		seen := make(map[float64]bool)
		var values []float64
		for _, row := range X {
			if !seen[row[f]] {
				seen[row[f]] = true
				values = append(values, row[f])
			}
		}
		sort.Float64s(values)

		for _, v := range values {
			var leftY, rightY []int
			for i, row := range X {
				if row[f] <= v {
					leftY = append(leftY, y[i])
				} else {
					rightY = append(rightY, y[i])
				}
			}
			if len(leftY) == 0 || len(rightY) == 0 {
				continue
			}
			n := float64(len(y))
			score := float64(len(leftY))/n*gini(leftY) + float64(len(rightY))/n*gini(rightY)
			if score < best {
				best = score
				feature, threshold, ok = f, v, true
			}
		}
	}
	return feature, threshold, ok
}
