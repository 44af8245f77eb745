package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fulldump/goconfig"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/samples"
)

type Config struct {
	N    int    `usage:"number of persons"`
	Out  string `usage:"output file, - for stdout"`
	Seed int64  `usage:"random seed, 0 picks one from the clock"`
}

func main() {

	c := Config{
		N:   1000,
		Out: "samples.json",
	}
	goconfig.Read(&c)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "samplegen"})

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	collection := person.NewCollection(samples.Generate(samples.NewRand(uint64(c.Seed)), c.N))
	data, err := person.Encode(collection)
	if err != nil {
		logger.Fatal("encode", "err", err)
	}

	if c.Out == "-" {
		os.Stdout.Write(data)
		return
	}

	err = os.WriteFile(c.Out, data, 0666)
	if err != nil {
		logger.Fatal("write", "file", c.Out, "err", err)
	}

	logger.Info("written", "file", c.Out, "persons", c.N, "seed", c.Seed)
}
