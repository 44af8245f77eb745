package main

import (
	"bytes"
	"net/http"
	"strconv"
)

func TestRuns(c Config) {

	payload := SamplePayload(c)
	url := c.Base + "/v1/runs?concurrent=" + strconv.FormatBool(c.Concurrent)

	Hammer(c, func() (*http.Request, error) {
		return http.NewRequest("POST", url, bytes.NewReader(payload))
	})
}
