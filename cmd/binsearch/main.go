// The binsearch command demonstrates the binary-search exercise family on
// fixed datasets. It needs no configuration or network.
package main

import (
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/exercises/search"
)

func main() {
	sorted := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	withDupes := []int{1, 2, 2, 2, 3, 4, 4, 5, 6}
	rotated := []int{7, 8, 9, 1, 2, 3, 4, 5, 6}
	matrix := [][]int{
		{1, 4, 7, 11},
		{2, 5, 8, 12},
		{3, 6, 9, 16},
		{10, 13, 14, 17},
	}

	cli.Header("Classic Binary Search")
	for _, target := range []int{7, 19, 4} {
		fmt.Printf("iterative(%d) = %d, recursive(%d) = %d\n",
			target, search.Iterative(sorted, target),
			target, search.Recursive(sorted, target))
	}

	cli.Header("Insertion Index")
	for _, target := range []int{0, 8, 25} {
		fmt.Printf("insertion index for %d: %d\n", target, search.InsertionIndex(sorted, target))
	}

	cli.Header("First and Last Occurrence")
	for _, target := range []int{2, 4, 9} {
		fmt.Printf("target %d: first=%d last=%d\n",
			target, search.FirstOccurrence(withDupes, target), search.LastOccurrence(withDupes, target))
	}

	cli.Header("Rotated Array Search")
	for _, target := range []int{3, 8, 10} {
		fmt.Printf("rotated(%d) = %d\n", target, search.Rotated(rotated, target))
	}

	cli.Header("Sorted Matrix Search")
	for _, target := range []int{5, 15} {
		mark := cli.CheckMark()
		if !search.Matrix(matrix, target) {
			mark = cli.CrossMark()
		}
		fmt.Printf("%s matrix contains %d: %v\n", mark, target, search.Matrix(matrix, target))
	}
}
