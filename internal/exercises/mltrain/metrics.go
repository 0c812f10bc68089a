package mltrain

import (
	"fmt"
	"strings"
)

// Metrics holds the binary classification scores, with 1 (survived) as
// the positive class.
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate predicts the test set and scores the result.
func Evaluate(model Classifier, testX [][]float64, testY []int) Metrics {
	preds := make([]int, len(testX))
	for i, x := range testX {
		preds[i] = model.Predict(x)
	}
	return Score(testY, preds)
}

// Score computes accuracy, precision, recall and F1 from true and
// predicted labels. Undefined ratios (zero denominator) score 0.
func Score(truth, preds []int) Metrics {
	var tp, tn, fp, fn int
	for i, want := range truth {
		switch {
		case preds[i] == 1 && want == 1:
			tp++
		case preds[i] == 1 && want == 0:
			fp++
		case preds[i] == 0 && want == 1:
			fn++
		default:
			tn++
		}
	}

	var m Metrics
	if total := tp + tn + fp + fn; total > 0 {
		m.Accuracy = float64(tp+tn) / float64(total)
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Result pairs a model name with its held-out metrics.
type Result struct {
	Model   string
	Metrics Metrics
}

// Compare trains every model on the training split and evaluates each on
// the held-out split. Results keep the input model order.
func Compare(models []Classifier, trainX [][]float64, trainY []int, testX [][]float64, testY []int) []Result {
	results := make([]Result, 0, len(models))
	for _, model := range models {
		model.Fit(trainX, trainY)
		results = append(results, Result{
			Model:   model.Name(),
			Metrics: Evaluate(model, testX, testY),
		})
	}
	return results
}

// RenderTable formats the comparison as a fixed-width text table.
func RenderTable(results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-22s %9s %10s %8s %8s\n", "Model", "Accuracy", "Precision", "Recall", "F1")
	b.WriteString(strings.Repeat("-", 62))
	b.WriteByte('\n')
	for _, r := range results {
		fmt.Fprintf(&b, "%-22s %9.3f %10.3f %8.3f %8.3f\n",
			r.Model, r.Metrics.Accuracy, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1)
	}
	return b.String()
}
