package api

import (
	"context"
	"io"
	"net/http"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/report"
)

// createRun decodes the request body as person records and benchmarks them.
// ?concurrent=true runs the three phases in parallel.
func createRun(ctx context.Context, w http.ResponseWriter, r *http.Request) (*report.Report, error) {

	concurrent, err := boolParam(r, "concurrent")
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &person.IOError{Err: err}
	}

	result, err := GetServicer(ctx).Benchmark(ctx, data, concurrent)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return result, nil
}
