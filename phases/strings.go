package phases

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/timing"
)

const CitySubstring = "New"

type StringResult struct {
	Concatenated   string
	SubstringCount int
	ReversedNames  []string
	Elapsed        time.Duration
}

// RunStringOps never fails. An empty collection yields an empty string, a
// zero count and no reversed names.
func RunStringOps(c *person.Collection) *StringResult {

	result := &StringResult{}
	result.Elapsed, _ = timing.Measure(func() error {
		result.Concatenated = ConcatenateNames(c)
		result.SubstringCount = CountCities(c, CitySubstring)
		result.ReversedNames = ReverseNames(c)
		return nil
	})

	return result
}

// ConcatenateNames joins all names with a single space, in collection order.
func ConcatenateNames(c *person.Collection) string {
	b := &strings.Builder{}
	for i, p := range c.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
	}
	return b.String()
}

// CountCities counts persons whose city contains substr (case-sensitive).
func CountCities(c *person.Collection, substr string) int {
	n := 0
	for _, p := range c.All() {
		if strings.Contains(p.City, substr) {
			n++
		}
	}
	return n
}

func ReverseNames(c *person.Collection) []string {
	reversed := make([]string, 0, c.Len())
	for _, p := range c.All() {
		reversed = append(reversed, Reverse(p.Name))
	}
	return reversed
}

// Reverse reverses s by grapheme cluster, so combining marks and multi rune
// emoji stay attached to their base character.
func Reverse(s string) string {
	if len(s) < 2 {
		return s
	}

	clusters := make([]string, 0, len(s))
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusters = append(clusters, cluster)
	}

	b := &strings.Builder{}
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}
