package main

import (
	"fmt"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test       string `usage:"name of the test: ALL | RUNS | FIND"`
	Base       string `usage:"base URL, empty starts an in-process server"`
	N          int64  `usage:"number of requests"`
	Workers    int    `usage:"number of workers"`
	Persons    int    `usage:"persons per request body"`
	Concurrent bool   `usage:"ask the server to run phases in parallel"`
	Seed       int64  `usage:"random seed for the generated persons"`
}

var cleanups []func()

// SelectTests resolves the test name into the benchmarks to run.
func SelectTests(name string) ([]func(Config), error) {
	switch strings.ToUpper(name) {
	case "ALL":
		return []func(Config){TestRuns, TestFind}, nil
	case "RUNS":
		return []func(Config){TestRuns}, nil
	case "FIND":
		return []func(Config){TestFind}, nil
	}
	return nil, fmt.Errorf("unknown test '%s'", name)
}

func main() {

	c := Config{
		Test:    "runs",
		Base:    "",
		N:       10_000,
		Workers: 16,
		Persons: 1000,
		Seed:    1,
	}
	goconfig.Read(&c)

	tests, err := SelectTests(c.Test)
	if err != nil {
		logger.Fatal("could not select tests", "err", err)
	}

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	if c.Base == "" {
		start, stop := CreateServer(&c)
		cleanups = append(cleanups, stop)
		go start()
	}

	for _, test := range tests {
		test(c)
	}
}
