package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/crossbench/bootstrap"
	"github.com/fulldump/crossbench/configuration"
	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/phases"
	"github.com/fulldump/crossbench/report"
	"github.com/fulldump/crossbench/service"
)

var banner = `
                        _                     _     
  ___ _ __ ___  ___ ___| |__   ___ _ __   ___| |__  
 / __| '__/ _ \/ __/ __| '_ \ / _ \ '_ \ / __| '_ \ 
| (__| | | (_) \__ \__ \ |_) |  __/ | | | (__| | | |
 \___|_|  \___/|___/___/_.__/ \___|_| |_|\___|_| |_|
                                      version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Fprintln(os.Stderr, banner)
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stderr, c, jsontext.WithIndent("    "))
		fmt.Fprintln(os.Stderr)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "crossbench",
		ReportTimestamp: true,
	})
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", c.LogLevel)
	}

	if c.Serve {
		err := serve(c, logger)
		if err != nil {
			logger.Error("serve", "err", err)
			os.Exit(1)
		}
		return
	}

	err := runOnce(c, logger)
	if err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}

func runOnce(c *configuration.Configuration, logger *log.Logger) error {

	collection, elapsed, err := service.DecodeFile(c.Input)
	if err != nil {
		return fmt.Errorf("load '%s': %w", c.Input, err)
	}
	logger.Debug("loaded", "file", c.Input, "records", collection.Len(), "took", elapsed)

	var results *phases.Results
	if c.Concurrent {
		results, err = phases.RunConcurrent(context.Background(), collection)
		if err != nil {
			return err
		}
	} else {
		results = phases.Run(collection)
	}

	r := report.New(collection.Len(), elapsed, results)
	r.Concurrent = c.Concurrent

	for _, p := range r.Phases {
		if p.Error != "" {
			logger.Warn("phase failed", "phase", p.Name, "err", p.Error)
		}
	}

	return report.Render(os.Stdout, c.Output, r)
}

func serve(c *configuration.Configuration, logger *log.Logger) error {

	s := service.NewService()

	// Preload the input file when there is one so :find and :run work
	// right away.
	if data, err := os.ReadFile(c.Input); err == nil {
		collection, err := s.Load(data)
		if err != nil {
			return fmt.Errorf("load '%s': %w", c.Input, err)
		}
		logger.Info("loaded", "file", c.Input, "records", collection.Len())
	} else if !os.IsNotExist(err) {
		return &person.IOError{Err: err}
	}

	start, _, _, err := bootstrap.Bootstrap(c, s, logger)
	if err != nil {
		return err
	}
	start()

	return nil
}
