// Package mltrain implements the model-training exercise: load the Titanic
// passenger CSV, engineer features, train two classifiers and compare their
// held-out metrics. Everything is deterministic for a fixed seed.
package mltrain

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// Passenger is one row of the raw dataset. A missing age is NaN until
// imputation.
type Passenger struct {
	Survived int
	Pclass   int
	Sex      string
	Age      float64
	SibSp    int
	Parch    int
	Fare     float64
	Embarked string
}

// Column order of the standard Titanic CSV.
const (
	colSurvived = 1
	colPclass   = 2
	colSex      = 4
	colAge      = 5
	colSibSp    = 6
	colParch    = 7
	colFare     = 9
	colEmbarked = 11
)

// Load parses the passenger CSV. Rows that fail to parse entirely are
// skipped; missing ages and embarkation ports survive as NaN / "" for the
// imputation step.
func Load(r io.Reader) ([]Passenger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading passengers: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset has no data rows")
	}

	var passengers []Passenger
	for _, row := range rows[1:] {
		if len(row) <= colEmbarked {
			continue
		}
		survived, err1 := strconv.Atoi(row[colSurvived])
		pclass, err2 := strconv.Atoi(row[colPclass])
		if err1 != nil || err2 != nil {
			continue
		}

		age := math.NaN()
		if v, err := strconv.ParseFloat(row[colAge], 64); err == nil {
			age = v
		}
		fare := 0.0
		if v, err := strconv.ParseFloat(row[colFare], 64); err == nil {
			fare = v
		}
		sibSp, _ := strconv.Atoi(row[colSibSp])
		parch, _ := strconv.Atoi(row[colParch])

		passengers = append(passengers, Passenger{
			Survived: survived,
			Pclass:   pclass,
			Sex:      strings.ToLower(strings.TrimSpace(row[colSex])),
			Age:      age,
			SibSp:    sibSp,
			Parch:    parch,
			Fare:     fare,
			Embarked: strings.TrimSpace(row[colEmbarked]),
		})
	}
	if len(passengers) == 0 {
		return nil, fmt.Errorf("no usable rows in dataset")
	}
	return passengers, nil
}

// FeatureNames is the engineered feature order used by Preprocess.
var FeatureNames = []string{"pclass", "sex", "age", "fare", "family_size", "embarked"}

// Preprocess imputes missing values (median age, mode embarkation),
// label-encodes sex and embarkation and adds the family-size feature.
// It returns the feature matrix and the survival labels.
func Preprocess(passengers []Passenger) ([][]float64, []int) {
	medAge := medianAge(passengers)
	modeEmb := modeEmbarked(passengers)

	embarkedCode := map[string]float64{"S": 0, "C": 1, "Q": 2}

	X := make([][]float64, len(passengers))
	y := make([]int, len(passengers))
	for i, p := range passengers {
		age := p.Age
		if math.IsNaN(age) {
			age = medAge
		}
		emb := p.Embarked
		if emb == "" {
			emb = modeEmb
		}
		sex := 0.0
		if p.Sex == "male" {
			sex = 1.0
		}

		X[i] = []float64{
			float64(p.Pclass),
			sex,
			age,
			p.Fare,
			float64(p.SibSp + p.Parch + 1),
			embarkedCode[emb],
		}
		y[i] = p.Survived
	}
	return X, y
}

func medianAge(passengers []Passenger) float64 {
	var ages []float64
	for _, p := range passengers {
		if !math.IsNaN(p.Age) {
			ages = append(ages, p.Age)
		}
	}
	if len(ages) == 0 {
		return 0
	}
	sort.Float64s(ages)
	mid := len(ages) / 2
	if len(ages)%2 == 0 {
		return (ages[mid-1] + ages[mid]) / 2
	}
	return ages[mid]
}

func modeEmbarked(passengers []Passenger) string {
	counts := make(map[string]int)
	for _, p := range passengers {
		if p.Embarked != "" {
			counts[p.Embarked]++
		}
	}
	mode, best := "S", 0
	for port, n := range counts {
		if n > best || (n == best && port < mode) {
			mode, best = port, n
		}
	}
	return mode
}

// Split shuffles deterministically and carves off testFrac of the data as
// the held-out set.
func Split(X [][]float64, y []int, testFrac float64, seed int64) (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	idx := rand.New(rand.NewSource(seed)).Perm(len(X))

	testN := int(float64(len(X)) * testFrac)
	for i, j := range idx {
		if i < testN {
			testX = append(testX, X[j])
			testY = append(testY, y[j])
		} else {
			trainX = append(trainX, X[j])
			trainY = append(trainY, y[j])
		}
	}
	return trainX, trainY, testX, testY
}

// Scaler standardizes features to zero mean and unit variance, fitted on
// the training set only.
type Scaler struct {
	mean []float64
	std  []float64
}

func FitScaler(X [][]float64) *Scaler {
	if len(X) == 0 {
		return &Scaler{}
	}
	n := len(X[0])
	s := &Scaler{mean: make([]float64, n), std: make([]float64, n)}

	for _, row := range X {
		for j, v := range row {
			s.mean[j] += v
		}
	}
	for j := range s.mean {
		s.mean[j] /= float64(len(X))
	}
	for _, row := range X {
		for j, v := range row {
			d := v - s.mean[j]
			s.std[j] += d * d
		}
	}
	for j := range s.std {
		s.std[j] = math.Sqrt(s.std[j] / float64(len(X)))
		if s.std[j] == 0 {
			s.std[j] = 1
		}
	}
	return s
}

func (s *Scaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.mean[j]) / s.std[j]
		}
		out[i] = scaled
	}
	return out
}
