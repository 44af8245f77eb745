package person

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/crossbench/date"
)

// Decode reads a JSON array of person objects. It is all or nothing: any
// malformed document, bad record or bad date fails the whole call and no
// collection is returned.
func Decode(data []byte) (*Collection, error) {

	// Duplicate names are checked here with case folding, so the exact
	// match check in jsontext is disabled to report them as schema errors.
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))

	tok, err := dec.ReadToken()
	if err != nil {
		return nil, syntaxError(dec, -1, err)
	}
	if tok.Kind() != '[' {
		return nil, &FormatError{
			Offset:  0,
			Index:   -1,
			Context: fmt.Sprintf("top-level value must be an array, found %s", describe(tok.Kind())),
		}
	}

	persons := []Person{}
	for i := 0; ; i++ {
		kind, err := peek(dec)
		if err != nil {
			return nil, syntaxError(dec, i, err)
		}
		if kind == ']' {
			break
		}
		if kind != '{' {
			return nil, &SchemaError{Index: i, Reason: fmt.Sprintf("record must be an object, found %s", describe(kind))}
		}
		p, err := decodePerson(dec, i)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}

	if _, err := dec.ReadToken(); err != nil { // closing ']'
		return nil, syntaxError(dec, -1, err)
	}

	_, err = dec.ReadToken()
	if err == nil {
		return nil, &FormatError{Offset: dec.InputOffset(), Index: -1, Context: "unexpected data after top-level array"}
	}
	if err != io.EOF {
		return nil, syntaxError(dec, -1, err)
	}

	return NewCollection(persons), nil
}

// DecodeReader reads r to the end and decodes its content. Read failures are
// reported as *IOError.
func DecodeReader(r io.Reader) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	return Decode(data)
}

// Encode writes the collection back as an indented JSON array, born dates
// in DD/MM/YYYY form.
func Encode(c *Collection) ([]byte, error) {
	data, err := json.Marshal(c.persons, jsontext.WithIndent("    "))
	if err != nil {
		return nil, fmt.Errorf("json encode persons: %w", err)
	}
	return data, nil
}

func peek(dec *jsontext.Decoder) (jsontext.Kind, error) {
	kind := dec.PeekKind()
	if kind == 0 {
		_, err := dec.ReadToken()
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return kind, nil
}

func decodePerson(dec *jsontext.Decoder, index int) (Person, error) {

	p := Person{}

	if _, err := dec.ReadToken(); err != nil { // opening '{'
		return p, syntaxError(dec, index, err)
	}

	seen := map[string]string{}
	found := map[string]bool{}
	for {
		kind, err := peek(dec)
		if err != nil {
			return p, syntaxError(dec, index, err)
		}
		if kind == '}' {
			break
		}

		tok, err := dec.ReadToken()
		if err != nil {
			return p, syntaxError(dec, index, err)
		}
		name := tok.String()
		folded := strings.ToLower(name)
		if previous, exists := seen[folded]; exists {
			return p, &SchemaError{Index: index, Field: name, Reason: fmt.Sprintf("duplicate of '%s'", previous)}
		}
		seen[folded] = name

		value, err := dec.ReadValue()
		if err != nil {
			return p, syntaxError(dec, index, err)
		}

		err = decodeField(&p, folded, value, index)
		if err != nil {
			return p, err
		}
		found[folded] = true
	}

	if _, err := dec.ReadToken(); err != nil { // closing '}'
		return p, syntaxError(dec, index, err)
	}

	for _, field := range Fields {
		if !found[field] {
			return p, &SchemaError{Index: index, Field: field, Reason: "missing"}
		}
	}

	return p, nil
}

// decodeField assigns value to the field named by the lower-cased key.
// Unknown keys are ignored.
func decodeField(p *Person, field string, value jsontext.Value, index int) error {

	mistyped := func(expected string) error {
		return &SchemaError{Index: index, Field: field, Reason: fmt.Sprintf("expected %s, found %s", expected, describe(value.Kind()))}
	}

	switch field {
	case FieldID, FieldAge:
		if value.Kind() != '0' {
			return mistyped("integer")
		}
		n, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			return &SchemaError{Index: index, Field: field, Reason: fmt.Sprintf("expected integer, found %s", value)}
		}
		if field == FieldID {
			p.ID = n
		} else {
			p.Age = n
		}

	case FieldHeight, FieldWeight:
		if value.Kind() != '0' {
			return mistyped("number")
		}
		var f float64
		if err := json.Unmarshal(value, &f); err != nil {
			return &SchemaError{Index: index, Field: field, Reason: err.Error()}
		}
		if field == FieldHeight {
			p.Height = f
		} else {
			p.Weight = f
		}

	case FieldName, FieldCity, FieldBorn:
		if value.Kind() != '"' {
			return mistyped("string")
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return &SchemaError{Index: index, Field: field, Reason: err.Error()}
		}
		switch field {
		case FieldName:
			p.Name = s
		case FieldCity:
			p.City = s
		case FieldBorn:
			born, err := date.Parse(s)
			if err != nil {
				return &FormatError{Offset: -1, Index: index, Field: field, Err: err}
			}
			p.Born = born
		}
	}

	return nil
}

func syntaxError(dec *jsontext.Decoder, index int, err error) error {

	offset := dec.InputOffset()
	syntactic := &jsontext.SyntacticError{}
	if errors.As(err, &syntactic) {
		offset = syntactic.ByteOffset
	}

	return &FormatError{
		Offset:  offset,
		Index:   index,
		Context: "malformed JSON",
		Err:     err,
	}
}

func describe(kind jsontext.Kind) string {
	switch kind {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '"':
		return "string"
	case '0':
		return "number"
	case '{':
		return "object"
	case '[':
		return "array"
	}
	return "invalid"
}
