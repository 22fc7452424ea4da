package genetic

import (
	"fmt"
	"strings"

	"github.com/yourusername/salty-sim/internal/lookup"
	"github.com/yourusername/salty-sim/internal/record"
)

// Filter restricts the history a lookup aggregates over
type Filter uint8

const (
	// FilterAll uses the party's whole history.
	FilterAll Filter = iota
	// FilterSpecific keeps only matches the opponent also fought in.
	FilterSpecific
)

var _ Gene[Filter] = Filter(0)

// String returns the filter name
func (f Filter) String() string {
	if f == FilterSpecific {
		return "specific"
	}
	return "all"
}

// ParseFilter resolves a filter by name
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all":
		return FilterAll, nil
	case "specific":
		return FilterSpecific, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q", name)
	}
}

// RandomFilter picks a filter uniformly
func RandomFilter(e *Evolver) Filter {
	return Filter(e.Intn(2))
}

// Choose recombines two filters
func (f Filter) Choose(other Filter, e *Evolver) Filter {
	if e.Mutates() {
		return RandomFilter(e)
	}
	return choose2(e, f, other)
}

// Records returns the part of records the filter keeps
func (f Filter) Records(opponent string, records []record.Record) []record.Record {
	if f == FilterSpecific {
		return lookup.Against(records, opponent)
	}
	return records
}

// Lookup filters records and then computes stat for name
func (f Filter) Lookup(stat Statistic, name, opponent string, records []record.Record) float64 {
	return stat.Lookup(name, f.Records(opponent, records))
}
