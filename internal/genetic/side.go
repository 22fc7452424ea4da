package genetic

import (
	"fmt"
	"strings"
)

// Side selects which participant's name a lookup queries
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

var _ Gene[Side] = Side(0)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// ParseSide resolves a side by name
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	default:
		return SideLeft, fmt.Errorf("unknown side %q", name)
	}
}

// RandomSide picks a side uniformly
func RandomSide(e *Evolver) Side {
	return Side(e.Intn(2))
}

// Choose recombines two sides
func (s Side) Choose(other Side, e *Evolver) Side {
	if e.Mutates() {
		return RandomSide(e)
	}
	return choose2(e, s, other)
}

// pick returns the name on this side and the opposing name
func (s Side) pick(left, right string) (name, opponent string) {
	if s == SideRight {
		return right, left
	}
	return left, right
}
