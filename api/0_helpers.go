package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/phases"
	"github.com/fulldump/crossbench/service"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	data, err := p.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// describeError maps err to the http status and the human description
// sent along with it.
func describeError(ctx context.Context, err error) (int, string) {

	var formatErr *person.FormatError
	var schemaErr *person.SchemaError
	var ioErr *person.IOError
	var syntaxErr *jsontext.SyntacticError
	var semanticErr *json.SemanticError
	var numErr *strconv.NumError

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "user is not authenticated"
	case errors.Is(err, box.ErrResourceNotFound):
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	case errors.Is(err, box.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	case errors.As(err, &formatErr):
		return http.StatusBadRequest, "Malformed person records"
	case errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity, "Record does not match the person schema"
	case errors.As(err, &ioErr):
		return http.StatusBadRequest, "Request body could not be read"
	case errors.As(err, &syntaxErr), errors.As(err, &semanticErr):
		return http.StatusBadRequest, "Malformed JSON"
	case errors.As(err, &numErr):
		return http.StatusBadRequest, "Bad parameter"
	case errors.Is(err, service.ErrorNotLoaded):
		return http.StatusConflict, "Load persons first"
	case errors.Is(err, phases.ErrEmptyInput):
		return http.StatusConflict, "The collection is empty"
	case errors.Is(err, service.ErrorPersonNotFound):
		return http.StatusNotFound, "Person not found"
	}

	return http.StatusInternalServerError, "Unexpected error"
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status, description := describeError(ctx, err)

		w := box.GetResponse(ctx)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}

// boolParam reads an optional boolean query parameter.
func boolParam(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}
