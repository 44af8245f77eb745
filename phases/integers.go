package phases

import (
	"math"
	"time"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/timing"
)

const (
	AgeRangeFrom = 20
	AgeRangeTo   = 30
)

type IntegerResult struct {
	Sum        int64
	Max        int64
	Min        int64
	RangeCount int
	Elapsed    time.Duration
}

// RunIntegerOps fails with an *EmptyInputError on an empty collection and
// with ErrSumOverflow if the ages do not fit in an int64 sum. On failure no
// partial result is returned; the error is a *PhaseError keeping the span.
func RunIntegerOps(c *person.Collection) (*IntegerResult, error) {

	result := &IntegerResult{}
	elapsed, err := timing.Measure(func() (err error) {
		result.Sum, err = SumAges(c)
		if err != nil {
			return err
		}
		result.Max, result.Min, err = AgeExtremes(c)
		if err != nil {
			return err
		}
		result.RangeCount = CountAgeRange(c, AgeRangeFrom, AgeRangeTo)
		return nil
	})
	if err != nil {
		return nil, &PhaseError{Elapsed: elapsed, Err: err}
	}
	result.Elapsed = elapsed

	return result, nil
}

// SumAges is 0 for an empty collection.
func SumAges(c *person.Collection) (int64, error) {
	sum := int64(0)
	for _, p := range c.All() {
		if (p.Age > 0 && sum > math.MaxInt64-p.Age) || (p.Age < 0 && sum < math.MinInt64-p.Age) {
			return 0, ErrSumOverflow
		}
		sum += p.Age
	}
	return sum, nil
}

// AgeExtremes returns the largest and the smallest age.
func AgeExtremes(c *person.Collection) (max, min int64, err error) {
	if c.Len() == 0 {
		return 0, 0, &EmptyInputError{Statistic: "age extremes"}
	}

	first := c.At(0)
	max, min = first.Age, first.Age
	for _, p := range c.All() {
		if p.Age > max {
			max = p.Age
		}
		if p.Age < min {
			min = p.Age
		}
	}
	return max, min, nil
}

// CountAgeRange counts persons with from <= age <= to.
func CountAgeRange(c *person.Collection, from, to int64) int {
	n := 0
	for _, p := range c.All() {
		if p.Age >= from && p.Age <= to {
			n++
		}
	}
	return n
}
