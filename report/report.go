package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/crossbench/phases"
)

const PhaseLoad = "load"

type Report struct {
	ID         string   `json:"id"`
	Records    int      `json:"records"`
	Concurrent bool     `json:"concurrent"`
	Phases     []*Phase `json:"phases"`
}

type Phase struct {
	Name    string        `json:"name"`
	Seconds float64       `json:"seconds"`
	Error   string        `json:"error,omitempty"`
	Result  interface{}   `json:"result,omitempty"`
	Elapsed time.Duration `json:"-"`
}

type StringSummary struct {
	ConcatenatedLength int `json:"concatenated_length"`
	SubstringCount     int `json:"substring_count"`
	ReversedNames      int `json:"reversed_names"`
}

type IntegerSummary struct {
	Sum        int64 `json:"sum"`
	Max        int64 `json:"max"`
	Min        int64 `json:"min"`
	RangeCount int   `json:"range_count"`
}

type FloatSummary struct {
	AvgHeight     float64 `json:"avg_height"`
	AvgWeight     float64 `json:"avg_weight"`
	MaxHeight     float64 `json:"max_height"`
	MinHeight     float64 `json:"min_height"`
	MaxWeight     float64 `json:"max_weight"`
	MinWeight     float64 `json:"min_weight"`
	ScaledHeights int     `json:"scaled_heights"`
	ScaledWeights int     `json:"scaled_weights"`
}

// New builds a report with a fresh id. load is the time spent reading and
// decoding the input; a zero load omits the load phase.
func New(records int, load time.Duration, results *phases.Results) *Report {

	r := &Report{
		ID:      uuid.NewString(),
		Records: records,
		Phases:  []*Phase{},
	}

	if load > 0 {
		r.Phases = append(r.Phases, newPhase(PhaseLoad, load))
	}

	if s := results.Strings; s != nil {
		p := newPhase(phases.PhaseStrings, s.Elapsed)
		p.Result = &StringSummary{
			ConcatenatedLength: len(s.Concatenated),
			SubstringCount:     s.SubstringCount,
			ReversedNames:      len(s.ReversedNames),
		}
		r.Phases = append(r.Phases, p)
	}

	if i := results.Integers; i != nil {
		p := newPhase(phases.PhaseIntegers, i.Elapsed)
		p.Result = &IntegerSummary{
			Sum:        i.Sum,
			Max:        i.Max,
			Min:        i.Min,
			RangeCount: i.RangeCount,
		}
		r.Phases = append(r.Phases, p)
	} else if results.IntegersErr != nil {
		r.Phases = append(r.Phases, failedPhase(phases.PhaseIntegers, results.IntegersErr))
	}

	if f := results.Floats; f != nil {
		p := newPhase(phases.PhaseFloats, f.Elapsed)
		p.Result = &FloatSummary{
			AvgHeight:     f.AvgHeight,
			AvgWeight:     f.AvgWeight,
			MaxHeight:     f.MaxHeight,
			MinHeight:     f.MinHeight,
			MaxWeight:     f.MaxWeight,
			MinWeight:     f.MinWeight,
			ScaledHeights: len(f.ScaledHeights),
			ScaledWeights: len(f.ScaledWeights),
		}
		r.Phases = append(r.Phases, p)
	} else if results.FloatsErr != nil {
		r.Phases = append(r.Phases, failedPhase(phases.PhaseFloats, results.FloatsErr))
	}

	return r
}

func newPhase(name string, elapsed time.Duration) *Phase {
	return &Phase{
		Name:    name,
		Seconds: elapsed.Seconds(),
		Elapsed: elapsed,
	}
}

func failedPhase(name string, err error) *Phase {
	p := newPhase(name, phases.Elapsed(err))
	p.Error = err.Error()
	return p
}

func (r *Report) Phase(name string) *Phase {
	for _, p := range r.Phases {
		if p.Name == name {
			return p
		}
	}
	return nil
}
