package service

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fulldump/crossbench/metrics"
	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/phases"
	"github.com/fulldump/crossbench/report"
	"github.com/fulldump/crossbench/timing"
)

// Service keeps the last loaded collection so it can be queried and
// benchmarked repeatedly without decoding it again.
type Service struct {
	mutex      sync.RWMutex
	collection *person.Collection
}

func NewService() *Service {
	return &Service{}
}

// Benchmark decodes data and runs every phase over it. The held collection
// is not touched.
func (s *Service) Benchmark(ctx context.Context, data []byte, concurrent bool) (*report.Report, error) {

	c, load, err := decode(data)
	if err != nil {
		return nil, err
	}

	return run(ctx, c, load, concurrent)
}

// Load replaces the held collection. On error the previous one is kept.
func (s *Service) Load(data []byte) (*person.Collection, error) {

	c, _, err := decode(data)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.collection = c
	s.mutex.Unlock()

	return c, nil
}

func (s *Service) Collection() (*person.Collection, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.collection == nil {
		return nil, ErrorNotLoaded
	}

	return s.collection, nil
}

func (s *Service) GetPerson(id int64) (person.Person, error) {

	c, err := s.Collection()
	if err != nil {
		return person.Person{}, err
	}

	p, found := c.FindByID(id)
	if !found {
		return person.Person{}, fmt.Errorf("%w: id %d", ErrorPersonNotFound, id)
	}

	return p, nil
}

// Run benchmarks the held collection. The report has no load phase.
func (s *Service) Run(ctx context.Context, concurrent bool) (*report.Report, error) {

	c, err := s.Collection()
	if err != nil {
		return nil, err
	}

	return run(ctx, c, 0, concurrent)
}

// DecodeFile reads and decodes filename. The elapsed span covers both the
// read and the decode. A file that cannot be opened is a *person.IOError.
func DecodeFile(filename string) (c *person.Collection, elapsed time.Duration, err error) {
	elapsed, err = timing.Measure(func() error {
		f, err := os.Open(filename)
		if err != nil {
			return &person.IOError{Err: err}
		}
		defer f.Close()

		c, err = person.DecodeReader(f)
		return err
	})
	observeDecode(c, err)
	return
}

func decode(data []byte) (c *person.Collection, load time.Duration, err error) {
	load, err = timing.Measure(func() (err error) {
		c, err = person.Decode(data)
		return
	})
	observeDecode(c, err)
	return
}

func observeDecode(c *person.Collection, err error) {
	if err != nil {
		metrics.ObserveDecodeError(err)
		return
	}
	metrics.ObserveDecoded(c.Len())
}

func run(ctx context.Context, c *person.Collection, load time.Duration, concurrent bool) (*report.Report, error) {

	var results *phases.Results
	if concurrent {
		var err error
		results, err = phases.RunConcurrent(ctx, c)
		if err != nil {
			return nil, err
		}
	} else {
		results = phases.Run(c)
	}

	r := report.New(c.Len(), load, results)
	r.Concurrent = concurrent
	metrics.ObserveReport(r)

	return r, nil
}
