package converter

import (
	"sort"

	"github.com/ccollicutt/logcsv/pkg/parser"
)

// Groups maps a log-type key to its records in read order.
type Groups struct {
	records map[string][]parser.LogRecord
	total   int
}

// NewGroups creates an empty grouping.
func NewGroups() *Groups {
	return &Groups{records: make(map[string][]parser.LogRecord)}
}

// Add appends rec to the group for key.
func (g *Groups) Add(key string, rec parser.LogRecord) {
	g.records[key] = append(g.records[key], rec)
	g.total++
}

// Keys returns the group keys in sorted order.
func (g *Groups) Keys() []string {
	keys := make([]string, 0, len(g.records))
	for k := range g.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns the records of one group in insertion order.
func (g *Groups) Records(key string) []parser.LogRecord {
	return g.records[key]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.records)
}

// Total returns the number of records across all groups.
func (g *Groups) Total() int {
	return g.total
}
