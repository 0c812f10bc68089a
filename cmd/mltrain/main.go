// The mltrain command demonstrates the model-training exercise: preprocess
// the Titanic dataset, train two classifiers and compare their held-out
// metrics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/exercises/mltrain"
	"github.com/practica/exercises/internal/platform/logger"
)

func main() {
	path := flag.String("data", "data/titanic.csv", "path to the passenger CSV")
	testFrac := flag.Float64("test", 0.2, "fraction of rows held out for evaluation")
	seed := flag.Int64("seed", 42, "shuffle seed")
	flag.Parse()

	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()

	f, err := os.Open(*path)
	if err != nil {
		cli.Fail(err)
	}
	defer f.Close()

	passengers, err := mltrain.Load(f)
	if err != nil {
		cli.Fail(err)
	}

	cli.Header("Preprocessing")
	X, y := mltrain.Preprocess(passengers)
	fmt.Printf("%s %d passengers, %d features: %v\n",
		cli.CheckMark(), len(X), len(mltrain.FeatureNames), mltrain.FeatureNames)

	trainX, trainY, testX, testY := mltrain.Split(X, y, *testFrac, *seed)
	fmt.Printf("Train/test split: %d/%d rows (seed %d)\n", len(trainX), len(testX), *seed)

	scaler := mltrain.FitScaler(trainX)

	cli.Header("Model Comparison")
	results := mltrain.Compare(
		[]mltrain.Classifier{mltrain.NewLogisticRegression(), mltrain.NewDecisionTree()},
		scaler.Transform(trainX), trainY,
		scaler.Transform(testX), testY,
	)
	fmt.Print(mltrain.RenderTable(results))

	best := results[0]
	for _, r := range results[1:] {
		if r.Metrics.F1 > best.Metrics.F1 {
			best = r
		}
	}
	fmt.Printf("\n%s Best model by F1: %s (%.3f)\n", cli.CheckMark(), best.Model, best.Metrics.F1)
}
