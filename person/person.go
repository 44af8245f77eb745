package person

import (
	"github.com/fulldump/crossbench/date"
)

type Person struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Age    int64     `json:"age"`
	City   string    `json:"city"`
	Born   date.Date `json:"born"`
	Height float64   `json:"height"`
	Weight float64   `json:"weight"`
}

// Field names as they appear in documents. Matching is case-insensitive.
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldAge    = "age"
	FieldCity   = "city"
	FieldBorn   = "born"
	FieldHeight = "height"
	FieldWeight = "weight"
)

var Fields = []string{FieldID, FieldName, FieldAge, FieldCity, FieldBorn, FieldHeight, FieldWeight}
