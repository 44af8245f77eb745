package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fulldump/biff"
	"github.com/go-json-experiment/json"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/phases"
)

func sampleResults() *phases.Results {
	c := person.NewCollection([]person.Person{
		{ID: 1, Name: "Ana", Age: 25, City: "New York", Height: 1.7, Weight: 60},
		{ID: 2, Name: "Luis", Age: 19, City: "Boston", Height: 1.8, Weight: 80},
	})
	return phases.Run(c)
}

func TestNew(t *testing.T) {

	r := New(2, 1500*time.Millisecond, sampleResults())

	biff.AssertTrue(r.ID != "")
	biff.AssertEqual(r.Records, 2)
	biff.AssertEqual(len(r.Phases), 4)
	biff.AssertEqual(r.Phases[0].Name, PhaseLoad)
	biff.AssertEqual(r.Phases[0].Seconds, 1.5)

	integers := r.Phase(phases.PhaseIntegers).Result.(*IntegerSummary)
	biff.AssertEqual(integers.Sum, int64(44))
	biff.AssertEqual(integers.RangeCount, 1)

	strs := r.Phase(phases.PhaseStrings).Result.(*StringSummary)
	biff.AssertEqual(strs.ConcatenatedLength, len("Ana Luis"))
	biff.AssertEqual(strs.SubstringCount, 1)
}

func TestNew_FailedPhases(t *testing.T) {

	r := New(0, 0, phases.Run(person.NewCollection(nil)))

	biff.AssertEqual(len(r.Phases), 3)
	biff.AssertNil(r.Phase(PhaseLoad))
	biff.AssertEqual(r.Phase(phases.PhaseStrings).Error, "")
	biff.AssertEqual(r.Phase(phases.PhaseIntegers).Error, "age extremes: empty input")
	biff.AssertEqual(r.Phase(phases.PhaseFloats).Error, "average height: empty input")
}

func TestNew_FailedPhaseKeepsSpan(t *testing.T) {

	r := New(0, 0, &phases.Results{
		Strings: &phases.StringResult{ReversedNames: []string{}},
		IntegersErr: &phases.PhaseError{
			Elapsed: 3 * time.Millisecond,
			Err:     &phases.EmptyInputError{Statistic: "age extremes"},
		},
		FloatsErr: &phases.EmptyInputError{Statistic: "average height"},
	})

	integers := r.Phase(phases.PhaseIntegers)
	biff.AssertEqual(integers.Error, "age extremes: empty input")
	biff.AssertEqual(integers.Elapsed, 3*time.Millisecond)
	biff.AssertEqual(integers.Seconds, 0.003)
	biff.AssertNil(integers.Result)

	floats := r.Phase(phases.PhaseFloats)
	biff.AssertEqual(floats.Error, "average height: empty input")
	biff.AssertEqual(floats.Seconds, 0.0)
}

func TestText(t *testing.T) {

	r := New(0, 0, phases.Run(person.NewCollection(nil)))
	r.Phases[0].Seconds = 0.25

	w := &bytes.Buffer{}
	err := Render(w, "text", r)

	biff.AssertNil(err)
	biff.AssertEqual(w.String(), ""+
		"String operations took 0.250000 seconds\n"+
		"Integer operations failed: age extremes: empty input\n"+
		"Float operations failed: average height: empty input\n")
}

func TestJSON(t *testing.T) {

	r := New(2, time.Second, sampleResults())

	w := &bytes.Buffer{}
	err := Render(w, "JSON", r)
	biff.AssertNil(err)

	decoded := map[string]interface{}{}
	biff.AssertNil(json.Unmarshal(w.Bytes(), &decoded))
	biff.AssertEqual(decoded["id"], r.ID)
	biff.AssertEqual(decoded["records"], 2.0)
	biff.AssertEqual(len(decoded["phases"].([]interface{})), 4)
}

func TestRender_UnknownFormat(t *testing.T) {

	err := Render(&bytes.Buffer{}, "xml", &Report{})

	biff.AssertNotNil(err)
	biff.AssertTrue(strings.Contains(err.Error(), "[json|text]"))
}
