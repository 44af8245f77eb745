package main

import (
	"bytes"
	"net/http"

	"github.com/go-json-experiment/json"
)

func TestFind(c Config) {

	err := LoadPersons(c.Base, SamplePayload(c))
	if err != nil {
		logger.Fatal("could not load persons", "err", err)
	}

	query, err := json.Marshal(JSON{
		"filter": JSON{
			"city": JSON{"$in": []string{"New York", "Newark"}},
		},
		"limit": 100,
	})
	if err != nil {
		logger.Fatal("could not encode query", "err", err)
	}

	Hammer(c, func() (*http.Request, error) {
		return http.NewRequest("POST", c.Base+"/v1/persons:find", bytes.NewReader(query))
	})
}
