package person

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/fulldump/crossbench/date"
)

const samplesJSON = `[
    {"id": 1, "name": "José Pérez", "age": 25, "city": "New York", "born": "05/11/1990", "height": 1.75, "weight": 70.5},
    {"id": 2, "name": "Ann Lee", "age": 19, "city": "Boston", "born": "17/03/2005", "height": 1.62, "weight": 55.0},
    {"id": 3, "name": "Bo Chen", "age": 31, "city": "Newark", "born": "01/01/1993", "height": 1.9, "weight": 88.25}
]`

func TestDecode(t *testing.T) {

	c, err := Decode([]byte(samplesJSON))

	biff.AssertNil(err)
	biff.AssertEqual(c.Len(), 3)
	biff.AssertEqual(c.At(0), Person{
		ID:     1,
		Name:   "José Pérez",
		Age:    25,
		City:   "New York",
		Born:   date.Date{Year: 1990, Month: time.November, Day: 5},
		Height: 1.75,
		Weight: 70.5,
	})
}

func TestDecode_PreservesOrder(t *testing.T) {

	c, err := Decode([]byte(`[
		{"id": 30, "name": "c", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1},
		{"id": 10, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1},
		{"id": 20, "name": "b", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}
	]`))
	biff.AssertNil(err)

	ids := []int64{}
	for _, p := range c.All() {
		ids = append(ids, p.ID)
	}
	biff.AssertEqual(ids, []int64{30, 10, 20})
}

func TestDecode_Empty(t *testing.T) {

	c, err := Decode([]byte(` [ ] `))

	biff.AssertNil(err)
	biff.AssertEqual(c.Len(), 0)
}

func TestDecode_CaseInsensitiveKeys(t *testing.T) {

	c, err := Decode([]byte(`[{"ID": 7, "Name": "Eva", "AGE": 40, "City": "Lima", "Born": "5/6/1984", "HEIGHT": 1.6, "Weight": 60}]`))

	biff.AssertNil(err)
	p := c.At(0)
	biff.AssertEqual(p.ID, int64(7))
	biff.AssertEqual(p.Name, "Eva")
	biff.AssertEqual(p.Age, int64(40))
	biff.AssertEqual(p.Born, date.Date{Year: 1984, Month: time.June, Day: 5})
	biff.AssertEqual(p.Weight, 60.0)
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {

	c, err := Decode([]byte(`[{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1, "email": null}]`))

	biff.AssertNil(err)
	biff.AssertEqual(c.Len(), 1)
}

func assertSchemaError(err error, index int, field string) {
	schemaErr := &SchemaError{}
	biff.AssertTrue(errors.As(err, &schemaErr))
	biff.AssertEqual(schemaErr.Index, index)
	biff.AssertEqual(schemaErr.Field, field)
}

func TestDecode_SchemaErrors(t *testing.T) {

	valid := `{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`

	cases := []struct {
		record string
		field  string
	}{
		{`{"name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`, "id"},
		{`{"id": 1, "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`, "name"},
		{`{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1}`, "weight"},
		{`{"id": 1, "name": "a", "age": "1", "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`, "age"},
		{`{"id": 1, "name": "a", "age": 25.0, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`, "age"},
		{`{"id": 1, "name": "a", "age": 2.5e1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`, "age"},
		{`{"id": 99999999999999999999, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`, "id"},
		{`{"id": 1, "name": 5, "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`, "name"},
		{`{"id": 1, "name": "a", "age": 1, "city": null, "born": "01/01/2000", "height": 1, "weight": 1}`, "city"},
		{`{"id": 1, "name": "a", "age": 1, "city": "x", "born": 19900101, "height": 1, "weight": 1}`, "born"},
		{`{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": "tall", "weight": 1}`, "height"},
		{`{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": [1]}`, "weight"},
		{`{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1e400, "weight": 1}`, "height"},
	}

	for _, c := range cases {
		collection, err := Decode([]byte("[" + valid + "," + c.record + "]"))
		biff.AssertNil(collection)
		assertSchemaError(err, 1, c.field)
	}
}

func TestDecode_DuplicateKeys(t *testing.T) {

	_, err := Decode([]byte(`[{"id": 1, "name": "a", "Name": "b", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}]`))
	assertSchemaError(err, 0, "Name")

	_, err = Decode([]byte(`[{"id": 1, "name": "a", "age": 1, "age": 2, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}]`))
	assertSchemaError(err, 0, "age")
}

func TestDecode_RecordNotObject(t *testing.T) {

	_, err := Decode([]byte(`[1, 2]`))

	assertSchemaError(err, 0, "")
}

func TestDecode_BadBornIsFormatError(t *testing.T) {

	_, err := Decode([]byte(`[
		{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1},
		{"id": 2, "name": "b", "age": 1, "city": "x", "born": "2000-01-01", "height": 1, "weight": 1}
	]`))

	formatErr := &FormatError{}
	biff.AssertTrue(errors.As(err, &formatErr))
	biff.AssertEqual(formatErr.Index, 1)
	biff.AssertEqual(formatErr.Field, "born")

	dateErr := &date.FormatError{}
	biff.AssertTrue(errors.As(err, &dateErr))
	biff.AssertEqual(dateErr.Input, "2000-01-01")
}

func TestDecode_MalformedJSON(t *testing.T) {

	inputs := []string{
		``,
		`[`,
		`[{"id": 1,}]`,
		`[{"id": 1, "name": "a"`,
		`{"id": 1}`,
		`"people"`,
		`null`,
		`[] []`,
		`[] trailing`,
		`[{"id": 1, "name": "a", "age": 1, "city": "x", "born": "01/01/2000", "height": 1, "weight": 1}`,
	}

	for _, input := range inputs {
		c, err := Decode([]byte(input))
		biff.AssertNil(c)
		formatErr := &FormatError{}
		biff.AssertTrue(errors.As(err, &formatErr))
	}
}

func TestDecode_MalformedJSONOffset(t *testing.T) {

	_, err := Decode([]byte(`[{"id": 1 "name": "a"}]`))

	formatErr := &FormatError{}
	biff.AssertTrue(errors.As(err, &formatErr))
	biff.AssertTrue(formatErr.Offset > 0)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDecodeReader(t *testing.T) {

	c, err := DecodeReader(strings.NewReader(samplesJSON))

	biff.AssertNil(err)
	biff.AssertEqual(c.Len(), 3)
}

func TestDecodeReader_IOError(t *testing.T) {

	c, err := DecodeReader(io.MultiReader(strings.NewReader("[ "), failingReader{}))

	biff.AssertNil(c)
	ioErr := &IOError{}
	biff.AssertTrue(errors.As(err, &ioErr))
	biff.AssertEqual(ioErr.Err.Error(), "disk on fire")
}

func TestEncode_RoundTrip(t *testing.T) {

	c, err := Decode([]byte(samplesJSON))
	biff.AssertNil(err)

	encoded, err := Encode(c)
	biff.AssertNil(err)
	biff.AssertTrue(strings.Contains(string(encoded), `"born": "05/11/1990"`))

	decoded, err := Decode(encoded)
	biff.AssertNil(err)
	biff.AssertEqual(decoded.persons, c.persons)
}

func TestEncode_Empty(t *testing.T) {

	encoded, err := Encode(NewCollection(nil))

	biff.AssertNil(err)
	biff.AssertEqual(string(encoded), "[]")
}
