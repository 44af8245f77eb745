package service

import (
	"context"
	"errors"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/report"
)

var ErrorNotLoaded = errors.New("no persons loaded")
var ErrorPersonNotFound = errors.New("person not found")

type Servicer interface {
	Benchmark(ctx context.Context, data []byte, concurrent bool) (*report.Report, error)
	Load(data []byte) (*person.Collection, error)
	Collection() (*person.Collection, error)
	GetPerson(id int64) (person.Person, error)
	Run(ctx context.Context, concurrent bool) (*report.Report, error)
}
