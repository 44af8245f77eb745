package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fulldump/crossbench/bootstrap"
	"github.com/fulldump/crossbench/configuration"
	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/samples"
	"github.com/fulldump/crossbench/service"
)

type JSON = map[string]any

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "bench",
})

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

// Hammer sends c.N requests built by newRequest across c.Workers workers and
// prints the throughput.
func Hammer(c Config, newRequest func() (*http.Request, error)) {

	client := &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
	}

	pending := c.N
	var failed int64

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Println("pending:", atomic.LoadInt64(&pending))
			}
		}
	}()

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&pending, -1) >= 0 {
			req, err := newRequest()
			if err != nil {
				logger.Fatal("new request", "err", err)
			}

			resp, err := client.Do(req)
			if err != nil {
				logger.Fatal("do request", "err", err)
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			if resp.StatusCode >= 300 {
				atomic.AddInt64(&failed, 1)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("sent:", c.N)
	fmt.Println("failed:", failed)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f req/sec\n", float64(c.N)/took.Seconds())
}

// SamplePayload encodes c.Persons generated persons as a request body.
func SamplePayload(c Config) []byte {
	collection := person.NewCollection(samples.Generate(samples.NewRand(uint64(c.Seed)), c.Persons))
	payload, err := person.Encode(collection)
	if err != nil {
		panic("Could not encode samples: " + err.Error())
	}
	return payload
}

// LoadPersons replaces the server collection with payload.
func LoadPersons(base string, payload []byte) error {

	req, err := http.NewRequest("POST", base+"/v1/persons", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("load persons: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	logger.Info("persons loaded", "response", string(bytes.TrimSpace(body)))
	return nil
}

func CreateServer(c *Config) (start, stop func()) {

	conf := configuration.Default()
	conf.HttpAddr = "127.0.0.1:0"

	serverLogger := logger.WithPrefix("server")
	serverLogger.SetLevel(log.WarnLevel)

	start, stop, addr, err := bootstrap.Bootstrap(conf, service.NewService(), serverLogger)
	if err != nil {
		panic("Could not start server: " + err.Error())
	}
	c.Base = "http://" + addr

	return start, stop
}
