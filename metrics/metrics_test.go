package metrics

import (
	"errors"
	"testing"

	"github.com/fulldump/biff"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/report"
)

func TestObserveReport(t *testing.T) {

	ok := testutil.ToFloat64(RunsTotal.WithLabelValues(ResultOK))
	failed := testutil.ToFloat64(RunsTotal.WithLabelValues(ResultFailed))
	floatErrors := testutil.ToFloat64(PhaseErrors.WithLabelValues("float"))
	records := testutil.ToFloat64(RecordsDecoded)
	floatObservations := sampleCount("float")

	ObserveReport(&report.Report{
		Records: 3,
		Phases: []*report.Phase{
			{Name: "load", Seconds: 0.001},
			{Name: "string", Seconds: 0.002},
		},
	})
	ObserveReport(&report.Report{
		Records: 0,
		Phases: []*report.Phase{
			{Name: "string", Seconds: 0.001},
			{Name: "float", Seconds: 0.0005, Error: "average height: empty input"},
		},
	})

	biff.AssertEqual(testutil.ToFloat64(RunsTotal.WithLabelValues(ResultOK)), ok+1)
	biff.AssertEqual(testutil.ToFloat64(RunsTotal.WithLabelValues(ResultFailed)), failed+1)
	biff.AssertEqual(testutil.ToFloat64(PhaseErrors.WithLabelValues("float")), floatErrors+1)
	// reports never count decoded records
	biff.AssertEqual(testutil.ToFloat64(RecordsDecoded), records)
	// the failed float phase still observes its span
	biff.AssertEqual(sampleCount("float"), floatObservations+1)
}

func sampleCount(phase string) uint64 {
	m := &dto.Metric{}
	err := PhaseDuration.WithLabelValues(phase).(prometheus.Metric).Write(m)
	biff.AssertNil(err)
	return m.GetHistogram().GetSampleCount()
}

func TestObserveDecoded(t *testing.T) {

	records := testutil.ToFloat64(RecordsDecoded)

	ObserveDecoded(3)
	ObserveDecoded(0)

	biff.AssertEqual(testutil.ToFloat64(RecordsDecoded), records+3)
}

func TestObserveDecodeError(t *testing.T) {

	rejected := testutil.ToFloat64(RunsTotal.WithLabelValues(ResultRejected))
	malformed := testutil.ToFloat64(RunsTotal.WithLabelValues(ResultMalformed))
	unreadable := testutil.ToFloat64(RunsTotal.WithLabelValues(ResultUnreadable))

	ObserveDecodeError(&person.SchemaError{Index: 0, Field: "age", Reason: "missing"})
	ObserveDecodeError(&person.FormatError{Offset: 3, Index: -1})
	ObserveDecodeError(&person.IOError{Err: errors.New("disk on fire")})

	biff.AssertEqual(testutil.ToFloat64(RunsTotal.WithLabelValues(ResultRejected)), rejected+1)
	biff.AssertEqual(testutil.ToFloat64(RunsTotal.WithLabelValues(ResultMalformed)), malformed+1)
	biff.AssertEqual(testutil.ToFloat64(RunsTotal.WithLabelValues(ResultUnreadable)), unreadable+1)
}
