package phases

import (
	"time"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/timing"
)

const ScaleFactor = 1.1

type FloatResult struct {
	AvgHeight     float64
	AvgWeight     float64
	MaxHeight     float64
	MinHeight     float64
	MaxWeight     float64
	MinWeight     float64
	ScaledHeights []float64
	ScaledWeights []float64
	Elapsed       time.Duration
}

// RunFloatOps fails with an *EmptyInputError on an empty collection, never
// with a NaN or infinite average.
func RunFloatOps(c *person.Collection) (*FloatResult, error) {

	result := &FloatResult{}
	elapsed, err := timing.Measure(func() error {
		if c.Len() == 0 {
			return &EmptyInputError{Statistic: "average height"}
		}

		totalHeight, totalWeight := 0.0, 0.0
		first := c.At(0)
		result.MaxHeight, result.MinHeight = first.Height, first.Height
		result.MaxWeight, result.MinWeight = first.Weight, first.Weight
		for _, p := range c.All() {
			totalHeight += p.Height
			totalWeight += p.Weight
			if p.Height > result.MaxHeight {
				result.MaxHeight = p.Height
			}
			if p.Height < result.MinHeight {
				result.MinHeight = p.Height
			}
			if p.Weight > result.MaxWeight {
				result.MaxWeight = p.Weight
			}
			if p.Weight < result.MinWeight {
				result.MinWeight = p.Weight
			}
		}
		n := float64(c.Len())
		result.AvgHeight = totalHeight / n
		result.AvgWeight = totalWeight / n

		result.ScaledHeights = make([]float64, 0, c.Len())
		result.ScaledWeights = make([]float64, 0, c.Len())
		for _, p := range c.All() {
			result.ScaledHeights = append(result.ScaledHeights, p.Height*ScaleFactor)
			result.ScaledWeights = append(result.ScaledWeights, p.Weight*ScaleFactor)
		}
		return nil
	})
	if err != nil {
		return nil, &PhaseError{Elapsed: elapsed, Err: err}
	}
	result.Elapsed = elapsed

	return result, nil
}

// Scale returns a new slice with every value multiplied by factor.
func Scale(values []float64, factor float64) []float64 {
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v * factor
	}
	return scaled
}
