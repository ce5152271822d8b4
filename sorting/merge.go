package sorting

import "cmp"

// MergeSort returns a new slice holding the values in non-decreasing order.
// The input slice is never modified.
func MergeSort[T cmp.Ordered](values []T) []T {
	switch len(values) {
	case 0:
		return []T{}
	case 1:
		return []T{values[0]}
	case 2:
		if values[1] < values[0] {
			return []T{values[1], values[0]}
		}
		return []T{values[0], values[1]}
	}

	mid := len(values) / 2

	return merge(MergeSort(values[:mid]), MergeSort(values[mid:]))
}

// merge takes the left head only when it is strictly smaller, so ties come from the right.
func merge[T cmp.Ordered](left, right []T) []T {
	merged := make([]T, 0, len(left)+len(right))

	var l, r int

	for l < len(left) && r < len(right) {
		if left[l] < right[r] {
			merged = append(merged, left[l])
			l++
		} else {
			merged = append(merged, right[r])
			r++
		}
	}

	merged = append(merged, left[l:]...)
	merged = append(merged, right[r:]...)

	return merged
}
