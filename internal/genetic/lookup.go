package genetic

import (
	"fmt"

	"github.com/yourusername/salty-sim/internal/record"
	"github.com/yourusername/salty-sim/internal/strategy"
)

// Calculator is a gene that evaluates to a value against simulation state
type Calculator[A any] interface {
	Calculate(sim strategy.Simulator, tier record.Tier, left, right string) A
	// Precalculate returns a value that does not depend on the match, if any.
	Precalculate() (A, bool)
}

// LookupKind is the top-level shape of a Lookup
type LookupKind uint8

const (
	// LookupSum evaluates to the active pool.
	LookupSum LookupKind = iota
	// LookupCharacter evaluates a statistic over one participant's history.
	LookupCharacter
)

// Lookup is an expression querying either the bankroll or a participant statistic.
// Side, Filter and Statistic are meaningful only for LookupCharacter.
type Lookup struct {
	Kind      LookupKind
	Side      Side
	Filter    Filter
	Statistic Statistic
}

var (
	_ Gene[Lookup]        = Lookup{}
	_ Calculator[float64] = Lookup{}
)

// Sum returns the bankroll lookup
func Sum() Lookup {
	return Lookup{Kind: LookupSum}
}

// Character returns a statistic lookup
func Character(side Side, filter Filter, stat Statistic) Lookup {
	return Lookup{Kind: LookupCharacter, Side: side, Filter: filter, Statistic: stat}
}

// RandomLookup picks Sum or Character with equal odds, randomizing every sub-gene of the latter
func RandomLookup(e *Evolver) Lookup {
	if e.Intn(2) == 0 {
		return Sum()
	}
	return Character(RandomSide(e), RandomFilter(e), RandomStatistic(e))
}

// Choose recombines two lookups. Two Character parents are crossed field by field;
// any other pairing selects one parent whole.
func (l Lookup) Choose(other Lookup, e *Evolver) Lookup {
	if e.Mutates() {
		return RandomLookup(e)
	}
	if l.Kind == LookupCharacter && other.Kind == LookupCharacter {
		return Character(
			l.Side.Choose(other.Side, e),
			l.Filter.Choose(other.Filter, e),
			l.Statistic.Choose(other.Statistic, e),
		)
	}
	return choose2(e, l, other)
}

// Calculate evaluates the lookup for a match between left and right
func (l Lookup) Calculate(sim strategy.Simulator, _ record.Tier, left, right string) float64 {
	if l.Kind == LookupSum {
		return sim.CurrentMoney()
	}
	name, opponent := l.Side.pick(left, right)
	return l.Filter.Lookup(l.Statistic, name, opponent, sim.LookupCharacter(name))
}

// Precalculate reports no match-independent value
func (l Lookup) Precalculate() (float64, bool) {
	return 0, false
}

// Optimize returns an equivalent lookup that is cheaper to evaluate; currently the identity.
func (l Lookup) Optimize() Lookup {
	return l
}

// String renders the lookup for logs
func (l Lookup) String() string {
	if l.Kind == LookupSum {
		return "sum"
	}
	return fmt.Sprintf("%s:%s:%s", l.Side, l.Filter, l.Statistic)
}
