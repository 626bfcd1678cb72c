package optimizer

import "iter"

// Combinations yields index tuples over [0, n) of sizes 1 through maxLen,
// shortest first and lexicographic within a size. The yielded slice is reused
// between iterations; copy it to keep it. Stopping the range stops generation.
func Combinations(n, maxLen int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if maxLen > n {
			maxLen = n
		}
		for size := 1; size <= maxLen; size++ {
			idx := make([]int, size)
			for i := range idx {
				idx[i] = i
			}
			for {
				if !yield(idx) {
					return
				}
				// Advance the rightmost index that still has room.
				i := size - 1
				for i >= 0 && idx[i] == n-size+i {
					i--
				}
				if i < 0 {
					break
				}
				idx[i]++
				for j := i + 1; j < size; j++ {
					idx[j] = idx[j-1] + 1
				}
			}
		}
	}
}
