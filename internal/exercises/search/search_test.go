package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sorted = []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

func TestIterativeAndRecursive(t *testing.T) {
	tests := []struct {
		target, want int
	}{
		{7, 3},
		{1, 0},
		{19, 9},
		{6, -1},
		{20, -1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Iterative(sorted, tc.target), "iterative target %d", tc.target)
		assert.Equal(t, tc.want, Recursive(sorted, tc.target), "recursive target %d", tc.target)
	}
}

func TestEdgeCases(t *testing.T) {
	assert.Equal(t, -1, Iterative(nil, 5))
	assert.Equal(t, -1, Recursive(nil, 5))
	assert.Equal(t, 0, Iterative([]int{1}, 1))
	assert.Equal(t, -1, Iterative([]int{1}, 2))
	assert.Equal(t, 0, Iterative([]int{1, 2}, 1))
	assert.Equal(t, 1, Iterative([]int{1, 2}, 2))
}

func TestInsertionIndex(t *testing.T) {
	tests := []struct {
		target, want int
	}{
		{0, 0},
		{2, 1},
		{6, 3},
		{20, 10},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, InsertionIndex(sorted, tc.target), "target %d", tc.target)
	}
	assert.Equal(t, 0, InsertionIndex(nil, 5))
}

func TestFirstLastOccurrence(t *testing.T) {
	dupes := []int{1, 2, 2, 2, 2, 3, 4, 5, 5, 5}

	tests := []struct {
		target, first, last int
	}{
		{2, 1, 4},
		{5, 7, 9},
		{1, 0, 0},
		{6, -1, -1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.first, FirstOccurrence(dupes, tc.target), "first of %d", tc.target)
		assert.Equal(t, tc.last, LastOccurrence(dupes, tc.target), "last of %d", tc.target)
	}
}

func TestRotated(t *testing.T) {
	rotated := []int{7, 8, 9, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		target, want int
	}{
		{1, 3},
		{5, 7},
		{9, 2},
		{10, -1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Rotated(rotated, tc.target), "target %d", tc.target)
	}
}

func TestMatrix(t *testing.T) {
	matrix := [][]int{
		{1, 4, 7, 11},
		{2, 5, 8, 12},
		{3, 6, 9, 16},
		{10, 13, 14, 17},
	}

	assert.True(t, Matrix(matrix, 5))
	assert.True(t, Matrix(matrix, 14))
	assert.False(t, Matrix(matrix, 20))
	assert.False(t, Matrix(matrix, 0))
	assert.False(t, Matrix(nil, 1))
	assert.False(t, Matrix([][]int{{}}, 1))
}

// Repeated calls over the same input must agree; the variants are pure.
func TestIdempotence(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, 3, Iterative(sorted, 7))
		assert.Equal(t, 1, InsertionIndex(sorted, 2))
	}
}
