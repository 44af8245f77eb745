package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/report"
)

type personsResponse struct {
	Total int `json:"total"`
}

func loadPersons(ctx context.Context, w http.ResponseWriter, r *http.Request) (*personsResponse, error) {

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &person.IOError{Err: err}
	}

	c, err := GetServicer(ctx).Load(data)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return &personsResponse{Total: c.Len()}, nil
}

func countPersons(ctx context.Context) (*personsResponse, error) {

	c, err := GetServicer(ctx).Collection()
	if err != nil {
		return nil, err
	}

	return &personsResponse{Total: c.Len()}, nil
}

func getPerson(ctx context.Context) (*person.Person, error) {

	id, err := strconv.ParseInt(box.GetUrlParameter(ctx, "personId"), 10, 64)
	if err != nil {
		return nil, err
	}

	p, err := GetServicer(ctx).GetPerson(id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

type findRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int                    `json:"skip"`
	Limit  int                    `json:"limit"`
}

func find(ctx context.Context, r *http.Request) ([]person.Person, error) {

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &person.IOError{Err: err}
	}

	input := &findRequest{
		Limit: 10,
	}
	if len(bytes.TrimSpace(data)) > 0 {
		err = json.Unmarshal(data, input)
		if err != nil {
			return nil, err
		}
	}

	c, err := GetServicer(ctx).Collection()
	if err != nil {
		return nil, err
	}

	return c.Filter(input.Filter, input.Skip, input.Limit)
}

func run(ctx context.Context, r *http.Request) (*report.Report, error) {

	concurrent, err := boolParam(r, "concurrent")
	if err != nil {
		return nil, err
	}

	return GetServicer(ctx).Run(ctx, concurrent)
}
