package mltrain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passengersCSV = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John",female,38,1,0,PC 17599,71.2833,C85,C
3,1,3,"Heikkinen, Miss. Laina",female,26,0,0,STON/O2,7.925,,S
4,1,1,"Futrelle, Mrs. Jacques",female,35,1,0,113803,53.1,C123,S
5,0,3,"Allen, Mr. William",male,35,0,0,373450,8.05,,S
6,0,3,"Moran, Mr. James",male,,0,0,330877,8.4583,,Q
7,0,1,"McCarthy, Mr. Timothy",male,54,0,0,17463,51.8625,E46,
`

func TestLoad(t *testing.T) {
	passengers, err := Load(strings.NewReader(passengersCSV))
	require.NoError(t, err)
	require.Len(t, passengers, 7)

	assert.Equal(t, 0, passengers[0].Survived)
	assert.Equal(t, "male", passengers[0].Sex)
	assert.InDelta(t, 7.25, passengers[0].Fare, 0.001)
	assert.True(t, passengers[5].Age != passengers[5].Age, "missing age should be NaN")
	assert.Equal(t, "", passengers[6].Embarked)
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader("PassengerId,Survived\n"))
	assert.Error(t, err)
}

func TestPreprocess_Imputation(t *testing.T) {
	passengers, err := Load(strings.NewReader(passengersCSV))
	require.NoError(t, err)

	X, y := Preprocess(passengers)
	require.Len(t, X, 7)
	require.Len(t, y, 7)

	// Known ages are 22, 26, 35, 35, 38, 54; the median is 35.
	assert.InDelta(t, 35.0, X[5][2], 0.001)
	// Missing embarkation takes the mode, S, encoded as 0.
	assert.InDelta(t, 0.0, X[6][5], 0.001)
	// Family size is SibSp + Parch + 1.
	assert.InDelta(t, 2.0, X[0][4], 0.001)
	// Sex encoding: male 1, female 0.
	assert.InDelta(t, 1.0, X[0][1], 0.001)
	assert.InDelta(t, 0.0, X[1][1], 0.001)
}

func TestSplit_DeterministicAndDisjoint(t *testing.T) {
	X := make([][]float64, 10)
	y := make([]int, 10)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = i % 2
	}

	trainX, trainY, testX, testY := Split(X, y, 0.3, 42)
	assert.Len(t, testX, 3)
	assert.Len(t, trainX, 7)
	assert.Len(t, trainY, 7)
	assert.Len(t, testY, 3)

	_, _, testX2, _ := Split(X, y, 0.3, 42)
	assert.Equal(t, testX, testX2)

	seen := make(map[float64]bool)
	for _, row := range trainX {
		seen[row[0]] = true
	}
	for _, row := range testX {
		assert.False(t, seen[row[0]], "train and test overlap")
	}
}

func TestScaler(t *testing.T) {
	X := [][]float64{{1, 10}, {3, 10}}
	s := FitScaler(X)

	scaled := s.Transform(X)
	assert.InDelta(t, -1.0, scaled[0][0], 0.001)
	assert.InDelta(t, 1.0, scaled[1][0], 0.001)
	// Zero variance column maps to zero, not NaN.
	assert.InDelta(t, 0.0, scaled[0][1], 0.001)
}

// separable returns a toy dataset where the first feature alone decides
// the class.
func separable() ([][]float64, []int) {
	var X [][]float64
	var y []int
	for i := 0; i < 20; i++ {
		X = append(X, []float64{-1 - float64(i)*0.1, float64(i % 3)})
		y = append(y, 0)
		X = append(X, []float64{1 + float64(i)*0.1, float64(i % 3)})
		y = append(y, 1)
	}
	return X, y
}

func TestLogisticRegression_LearnsSeparableData(t *testing.T) {
	X, y := separable()
	model := NewLogisticRegression()
	model.Fit(X, y)

	m := Evaluate(model, X, y)
	assert.Equal(t, 1.0, m.Accuracy)
	assert.Greater(t, model.PredictProba([]float64{2, 0}), 0.9)
	assert.Less(t, model.PredictProba([]float64{-2, 0}), 0.1)
}

func TestDecisionTree_LearnsSeparableData(t *testing.T) {
	X, y := separable()
	model := NewDecisionTree()
	model.Fit(X, y)

	m := Evaluate(model, X, y)
	assert.Equal(t, 1.0, m.Accuracy)
	assert.Equal(t, 1, model.Predict([]float64{5, 0}))
	assert.Equal(t, 0, model.Predict([]float64{-5, 0}))
}

func TestScore(t *testing.T) {
	truth := []int{1, 1, 1, 0, 0, 0}
	preds := []int{1, 1, 0, 1, 0, 0}

	m := Score(truth, preds)
	assert.InDelta(t, 4.0/6.0, m.Accuracy, 0.001)
	assert.InDelta(t, 2.0/3.0, m.Precision, 0.001)
	assert.InDelta(t, 2.0/3.0, m.Recall, 0.001)
	assert.InDelta(t, 2.0/3.0, m.F1, 0.001)
}

func TestScore_NoPositivePredictions(t *testing.T) {
	m := Score([]int{1, 0}, []int{0, 0})
	assert.Equal(t, 0.0, m.Precision)
	assert.Equal(t, 0.0, m.F1)
}

func TestCompareAndRenderTable(t *testing.T) {
	X, y := separable()
	trainX, trainY, testX, testY := Split(X, y, 0.25, 7)

	scaler := FitScaler(trainX)
	results := Compare(
		[]Classifier{NewLogisticRegression(), NewDecisionTree()},
		scaler.Transform(trainX), trainY,
		scaler.Transform(testX), testY,
	)
	require.Len(t, results, 2)
	assert.Equal(t, "logistic regression", results[0].Model)
	assert.Equal(t, "decision tree", results[1].Model)
	assert.Equal(t, 1.0, results[0].Metrics.Accuracy)
	assert.Equal(t, 1.0, results[1].Metrics.Accuracy)

	table := RenderTable(results)
	assert.Contains(t, table, "Model")
	assert.Contains(t, table, "logistic regression")
	assert.Contains(t, table, "1.000")
}
