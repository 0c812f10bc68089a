// Package search implements the binary-search interview exercise family.
// Every function takes a sorted input and returns -1 (or false for the
// matrix variant) when the target is absent.
package search

// Iterative is the classic binary search. O(log n), O(1) space.
func Iterative(arr []int, target int) int {
	left, right := 0, len(arr)-1

	for left <= right {
		mid := left + (right-left)/2
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1
}

// Recursive is the classic recursive formulation. O(log n) stack depth.
func Recursive(arr []int, target int) int {
	return recursive(arr, target, 0, len(arr)-1)
}

func recursive(arr []int, target, left, right int) int {
	if left > right {
		return -1
	}
	mid := left + (right-left)/2
	switch {
	case arr[mid] == target:
		return mid
	case arr[mid] < target:
		return recursive(arr, target, mid+1, right)
	default:
		return recursive(arr, target, left, mid-1)
	}
}

// InsertionIndex returns the leftmost position where target can be inserted
// while keeping arr sorted.
func InsertionIndex(arr []int, target int) int {
	left, right := 0, len(arr)

	for left < right {
		mid := left + (right-left)/2
		if arr[mid] < target {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// FirstOccurrence returns the index of the first occurrence of target in a
// sorted array that may contain duplicates, or -1.
func FirstOccurrence(arr []int, target int) int {
	left, right := 0, len(arr)-1
	result := -1

	for left <= right {
		mid := left + (right-left)/2
		switch {
		case arr[mid] == target:
			result = mid
			right = mid - 1
		case arr[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return result
}

// LastOccurrence returns the index of the last occurrence of target, or -1.
func LastOccurrence(arr []int, target int) int {
	left, right := 0, len(arr)-1
	result := -1

	for left <= right {
		mid := left + (right-left)/2
		switch {
		case arr[mid] == target:
			result = mid
			left = mid + 1
		case arr[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return result
}

// Rotated searches a sorted array that was rotated at an unknown pivot.
// One half around mid is always sorted; recurse into whichever half can
// contain the target.
func Rotated(arr []int, target int) int {
	left, right := 0, len(arr)-1

	for left <= right {
		mid := left + (right-left)/2
		if arr[mid] == target {
			return mid
		}

		if arr[left] <= arr[mid] { // left half sorted
			if arr[left] <= target && target < arr[mid] {
				right = mid - 1
			} else {
				left = mid + 1
			}
		} else { // right half sorted
			if arr[mid] < target && target <= arr[right] {
				left = mid + 1
			} else {
				right = mid - 1
			}
		}
	}
	return -1
}

// Matrix reports whether target exists in a matrix whose rows and columns
// are both sorted ascending. Staircase walk from the top-right corner,
// O(rows+cols).
func Matrix(matrix [][]int, target int) bool {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return false
	}

	row, col := 0, len(matrix[0])-1
	for row < len(matrix) && col >= 0 {
		switch {
		case matrix[row][col] == target:
			return true
		case matrix[row][col] > target:
			col--
		default:
			row++
		}
	}
	return false
}
