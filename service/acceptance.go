package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

func samplePersons() []JSON {
	return []JSON{
		{"id": 1, "name": "José", "age": 25, "city": "New York", "born": "05/11/1999", "height": 1.80, "weight": 80},
		{"id": 2, "name": "Ann", "age": 19, "city": "Boston", "born": "17/03/2005", "height": 1.60, "weight": 55},
		{"id": 3, "name": "Bo", "age": 31, "city": "Newark", "born": "01/01/1993", "height": 1.70, "weight": 70},
	}
}

func phaseOf(body JSON, name string) JSON {
	for _, item := range body["phases"].([]interface{}) {
		phase := item.(JSON)
		if phase["name"] == name {
			return phase
		}
	}
	return nil
}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Run benchmark", func(a *biff.A) {
		resp := apiRequest("POST", "/runs").
			WithBodyJson(samplePersons()).Do()
		Save(resp, "Run benchmark", `
			Decodes the body as person records and runs the string, integer
			and float phases over them.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		body := resp.BodyJsonMap()
		biff.AssertEqualJson(body["records"], 3)
		biff.AssertEqual(body["concurrent"], false)
		biff.AssertNotNil(phaseOf(body, "load"))
		biff.AssertEqualJson(phaseOf(body, "string")["result"], JSON{
			"concatenated_length": 12,
			"substring_count":     2,
			"reversed_names":      3,
		})
		biff.AssertEqualJson(phaseOf(body, "integer")["result"], JSON{
			"sum":         75,
			"max":         31,
			"min":         19,
			"range_count": 1,
		})
		biff.AssertNotNil(phaseOf(body, "float")["result"])
	})

	a.Alternative("Run benchmark concurrently", func(a *biff.A) {
		resp := apiRequest("POST", "/runs").
			WithQuery("concurrent", "true").
			WithBodyJson(samplePersons()).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		body := resp.BodyJsonMap()
		biff.AssertEqual(body["concurrent"], true)
		biff.AssertEqual(len(body["phases"].([]interface{})), 4)
	})

	a.Alternative("Run benchmark on empty input", func(a *biff.A) {
		resp := apiRequest("POST", "/runs").
			WithBodyString(`[]`).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		body := resp.BodyJsonMap()
		biff.AssertEqualJson(body["records"], 0)
		biff.AssertEqual(phaseOf(body, "integer")["error"], "age extremes: empty input")
		biff.AssertEqual(phaseOf(body, "float")["error"], "average height: empty input")
	})

	a.Alternative("Run benchmark with malformed JSON", func(a *biff.A) {
		resp := apiRequest("POST", "/runs").
			WithBodyString(`[{"id": 1,`).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqual(resp.BodyJsonMap()["error"].(JSON)["description"], "Malformed person records")
	})

	a.Alternative("Run benchmark with a bad record", func(a *biff.A) {
		persons := samplePersons()
		persons[1]["age"] = "nineteen"
		resp := apiRequest("POST", "/runs").
			WithBodyJson(persons).Do()
		Save(resp, "Run benchmark with a bad record", `
			A single record out of schema rejects the whole input.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusUnprocessableEntity)
	})

	a.Alternative("Persons not loaded", func(a *biff.A) {
		resp := apiRequest("GET", "/persons").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "no persons loaded",
				"description": "Load persons first",
			},
		})
	})

	a.Alternative("Load persons", func(a *biff.A) {
		resp := apiRequest("POST", "/persons").
			WithBodyJson(samplePersons()).Do()
		Save(resp, "Load persons", `
			Replaces the loaded collection.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"total": 3})

		a.Alternative("Count persons", func(a *biff.A) {
			resp := apiRequest("GET", "/persons").Do()
			Save(resp, "Count persons", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"total": 3})
		})

		a.Alternative("Get person", func(a *biff.A) {
			resp := apiRequest("GET", "/persons/2").Do()
			Save(resp, "Get person", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), samplePersons()[1])
		})

		a.Alternative("Get missing person", func(a *biff.A) {
			resp := apiRequest("GET", "/persons/99").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Get person with a bad id", func(a *biff.A) {
			resp := apiRequest("GET", "/persons/two").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Find persons", func(a *biff.A) {
			resp := apiRequest("POST", "/persons:find").
				WithBodyJson(JSON{
					"filter": JSON{
						"city": JSON{"$in": []string{"Boston", "Newark"}},
					},
				}).Do()
			Save(resp, "Find persons", `
				Filters the loaded collection with a mongo like expression.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				samplePersons()[1],
				samplePersons()[2],
			})
		})

		a.Alternative("Find persons with skip and limit", func(a *biff.A) {
			resp := apiRequest("POST", "/persons:find").
				WithBodyJson(JSON{
					"skip":  1,
					"limit": 1,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				samplePersons()[1],
			})
		})

		a.Alternative("Run loaded persons", func(a *biff.A) {
			resp := apiRequest("POST", "/persons:run").Do()
			Save(resp, "Run loaded persons", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJsonMap()
			biff.AssertEqualJson(body["records"], 3)
			biff.AssertNil(phaseOf(body, "load"))
			biff.AssertEqual(len(body["phases"].([]interface{})), 3)
		})

		a.Alternative("Failed load keeps the previous collection", func(a *biff.A) {
			resp := apiRequest("POST", "/persons").
				WithBodyString(`[{"id": 1}]`).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusUnprocessableEntity)

			resp = apiRequest("GET", "/persons").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"total": 3})
		})
	})
}
