// Package split partitions lagged dataset rows into contiguous train,
// validation, and test index sets. Rows are never shuffled so that the
// temporal ordering of the series is preserved across partitions.
package split

// Partitions holds three disjoint, strictly increasing index sets covering
// every row exactly once. Any of the sets may be empty for small row counts.
type Partitions struct {
	Train      []int
	Validation []int
	Test       []int
}

// Split assigns the first 80% of rows to train, the next 10% to validation,
// and the remainder to test. Proportions are floor rounded with the
// remainder going to test.
func Split(rowCount int) Partitions {
	trainEnd := rowCount * 8 / 10
	valEnd := rowCount * 9 / 10
	return Partitions{
		Train:      indexRange(0, trainEnd),
		Validation: indexRange(trainEnd, valEnd),
		Test:       indexRange(valEnd, rowCount),
	}
}

func indexRange(start, end int) []int {
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return idx
}
