package phases

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/fulldump/crossbench/person"
)

const (
	PhaseStrings  = "string"
	PhaseIntegers = "integer"
	PhaseFloats   = "float"
)

// Results holds the outcome of one run. A phase that failed has a nil
// result and a non nil error; other phases are unaffected.
type Results struct {
	Strings     *StringResult
	Integers    *IntegerResult
	IntegersErr error
	Floats      *FloatResult
	FloatsErr   error
}

func (r *Results) Err() error {
	return errors.Join(r.IntegersErr, r.FloatsErr)
}

// Run executes the three phases one after the other, each in its own span.
func Run(c *person.Collection) *Results {
	r := &Results{}
	r.Strings = RunStringOps(c)
	r.Integers, r.IntegersErr = RunIntegerOps(c)
	r.Floats, r.FloatsErr = RunFloatOps(c)
	return r
}

// RunConcurrent executes the three phases in parallel. Every phase reads the
// same collection and is timed by its own span. The returned error is only
// about ctx; phase failures are reported inside Results.
func RunConcurrent(ctx context.Context, c *person.Collection) (*Results, error) {

	r := &Results{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Strings = RunStringOps(c)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Integers, r.IntegersErr = RunIntegerOps(c)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Floats, r.FloatsErr = RunFloatOps(c)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r, nil
}
