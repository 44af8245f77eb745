// Package samples generates random person collections shaped like the
// benchmark input files.
package samples

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/fulldump/crossbench/date"
	"github.com/fulldump/crossbench/person"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "José", "María", "Zoë", "Chloé", "Søren", "Łukasz",
	"Björn", "Ana", "Hiroshi", "Amélie",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodríguez", "Martínez", "Müller", "Nuñez", "Kowalski", "O'Brien", "Tanaka",
	"Dubois",
}

var cities = []string{
	"New York", "Newark", "New Orleans", "Newport", "Boston", "Chicago",
	"Lake Amanda", "Port Jessica", "East Michael", "Springfield", "Madrid",
	"Renewville", "Houston", "Phoenix",
}

// Generate returns n persons with ids 1..n. Ages are in [18, 80], heights in
// [1.5, 2.0) rounded to 5 decimals and weights in [50, 100) rounded to 3.
func Generate(r *rand.Rand, n int) []person.Person {

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	persons := make([]person.Person, 0, n)
	for i := 1; i <= n; i++ {
		born := now.AddDate(-18-r.IntN(62), 0, -r.IntN(365))
		persons = append(persons, person.Person{
			ID:   int64(i),
			Name: firstNames[r.IntN(len(firstNames))] + " " + lastNames[r.IntN(len(lastNames))],
			Age:  int64(18 + r.IntN(63)),
			City: cities[r.IntN(len(cities))],
			Born: date.Date{
				Year:  born.Year(),
				Month: born.Month(),
				Day:   born.Day(),
			},
			Height: round(1.5+r.Float64()*0.5, 5),
			Weight: round(50+r.Float64()*50, 3),
		})
	}

	return persons
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
