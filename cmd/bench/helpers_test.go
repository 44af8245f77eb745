package main

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/crossbench/person"
)

func TestSelectTests(t *testing.T) {

	tests, err := SelectTests("all")
	biff.AssertNil(err)
	biff.AssertEqual(len(tests), 2)

	tests, err = SelectTests("Find")
	biff.AssertNil(err)
	biff.AssertEqual(len(tests), 1)

	_, err = SelectTests("nope")
	biff.AssertNotNil(err)
	biff.AssertEqual(err.Error(), "unknown test 'nope'")
}

func TestParallel(t *testing.T) {

	var calls int64
	Parallel(7, func() {
		atomic.AddInt64(&calls, 1)
	})

	biff.AssertEqual(calls, int64(7))
}

func TestSamplePayload(t *testing.T) {

	c := Config{Persons: 25, Seed: 3}

	payload := SamplePayload(c)
	collection, err := person.Decode(payload)
	biff.AssertNil(err)
	biff.AssertEqual(collection.Len(), 25)
	biff.AssertEqual(string(SamplePayload(c)), string(payload))
}

func TestLoadPersons(t *testing.T) {

	c := &Config{Persons: 10, Seed: 1}
	start, stop := CreateServer(c)
	done := make(chan struct{})
	go func() {
		start()
		close(done)
	}()
	defer func() {
		stop()
		<-done
	}()

	biff.Alternative("Ok", func(a *biff.A) {
		err := LoadPersons(c.Base, SamplePayload(*c))
		biff.AssertNil(err)
	})

	biff.Alternative("Rejected payload", func(a *biff.A) {
		err := LoadPersons(c.Base, []byte(`{`))
		biff.AssertNotNil(err)
		biff.AssertTrue(strings.Contains(err.Error(), "unexpected status 400"))
	})

	biff.Alternative("Bad base URL", func(a *biff.A) {
		err := LoadPersons(":", nil)
		biff.AssertNotNil(err)
		biff.AssertTrue(strings.HasPrefix(err.Error(), "new request: "))
	})
}
