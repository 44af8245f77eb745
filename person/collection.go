package person

import (
	"fmt"
	"iter"
	"sync"

	"github.com/SierraSoftworks/connor"
	"github.com/google/btree"

	"github.com/fulldump/crossbench/utils"
)

// Collection is the ordered, read-only result of Decode. Order matches the
// source array. Safe for concurrent readers.
type Collection struct {
	persons []Person

	indexOnce sync.Once
	byID      *btree.BTreeG[indexEntry]
	byAge     *btree.BTreeG[indexEntry]
}

type indexEntry struct {
	Key int64
	Pos int
}

func lessIndexEntry(a, b indexEntry) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	return a.Pos < b.Pos
}

// NewCollection takes ownership of persons; callers must not modify the
// slice afterwards.
func NewCollection(persons []Person) *Collection {
	return &Collection{
		persons: persons,
	}
}

func (c *Collection) Len() int {
	return len(c.persons)
}

// At returns a copy of the i-th person.
func (c *Collection) At(i int) Person {
	return c.persons[i]
}

// All yields index and a copy of every person in collection order.
func (c *Collection) All() iter.Seq2[int, Person] {
	return func(yield func(int, Person) bool) {
		for i := range c.persons {
			if !yield(i, c.persons[i]) {
				return
			}
		}
	}
}

func (c *Collection) buildIndexes() {
	c.indexOnce.Do(func() {
		c.byID = btree.NewG(32, lessIndexEntry)
		c.byAge = btree.NewG(32, lessIndexEntry)
		for i, p := range c.persons {
			c.byID.ReplaceOrInsert(indexEntry{Key: p.ID, Pos: i})
			c.byAge.ReplaceOrInsert(indexEntry{Key: p.Age, Pos: i})
		}
	})
}

// FindByID returns the first person, in collection order, with the given id.
func (c *Collection) FindByID(id int64) (Person, bool) {
	c.buildIndexes()

	found := -1
	c.byID.AscendGreaterOrEqual(indexEntry{Key: id, Pos: -1}, func(e indexEntry) bool {
		if e.Key == id {
			found = e.Pos
		}
		return false
	})
	if found < 0 {
		return Person{}, false
	}

	return c.persons[found], true
}

// AgeBetween returns persons with from <= age <= to, ordered by age and then
// by collection order.
func (c *Collection) AgeBetween(from, to int64) []Person {
	c.buildIndexes()

	result := []Person{}
	if from > to {
		return result
	}
	c.byAge.AscendGreaterOrEqual(indexEntry{Key: from, Pos: -1}, func(e indexEntry) bool {
		if e.Key > to {
			return false
		}
		result = append(result, c.persons[e.Pos])
		return true
	})

	return result
}

// Filter matches every person against a mongo-like filter, skipping the
// first skip matches and returning at most limit of them. A negative limit
// means no limit.
func (c *Collection) Filter(filter map[string]interface{}, skip, limit int) ([]Person, error) {

	result := []Person{}
	hasFilter := len(filter) > 0

	for _, p := range c.persons {

		if limit == 0 {
			break
		}

		if hasFilter {
			document := map[string]interface{}{}
			err := utils.Remarshal(p, &document)
			if err != nil {
				return nil, fmt.Errorf("remarshal person %d: %w", p.ID, err)
			}
			match, err := connor.Match(filter, document)
			if err != nil {
				return nil, fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		result = append(result, p)
	}

	return result, nil
}
