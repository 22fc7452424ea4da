// Package strategy defines the contract between the simulation and betting strategies.
package strategy

import (
	"fmt"

	"github.com/yourusername/salty-sim/internal/record"
)

// Simulator is the read-only view of simulation state handed to strategies
type Simulator interface {
	// MatchesLen returns how many prior records name took part in.
	MatchesLen(name string) int
	// CurrentMoney returns the active pool: the tournament pool inside a tournament,
	// the main bankroll otherwise.
	CurrentMoney() float64
	// LookupCharacter returns name's prior records in chronological order.
	// Callers must not modify the returned slice.
	LookupCharacter(name string) []record.Record
}

// Strategy decides a bet for an upcoming match
type Strategy interface {
	Bet(sim Simulator, tier record.Tier, left, right string) Bet
}

// Func adapts an ordinary function to the Strategy interface
type Func func(sim Simulator, tier record.Tier, left, right string) Bet

// Bet calls f
func (f Func) Bet(sim Simulator, tier record.Tier, left, right string) Bet {
	return f(sim, tier, left, right)
}

// BetSide is the side a bet backs
type BetSide uint8

const (
	BetNone BetSide = iota
	BetLeft
	BetRight
)

// Bet is a wager of Amount on Side; a BetNone bet carries no amount
type Bet struct {
	Side   BetSide
	Amount float64
}

// NoBet declines to wager
var NoBet = Bet{Side: BetNone}

// Left backs the left side
func Left(amount float64) Bet {
	return Bet{Side: BetLeft, Amount: amount}
}

// Right backs the right side
func Right(amount float64) Bet {
	return Bet{Side: BetRight, Amount: amount}
}

// Swap exchanges Left and Right, leaving NoBet unchanged
func (b Bet) Swap() Bet {
	switch b.Side {
	case BetLeft:
		return Right(b.Amount)
	case BetRight:
		return Left(b.Amount)
	default:
		return NoBet
	}
}

// String renders the bet for logs
func (b Bet) String() string {
	switch b.Side {
	case BetLeft:
		return fmt.Sprintf("Left(%g)", b.Amount)
	case BetRight:
		return fmt.Sprintf("Right(%g)", b.Amount)
	default:
		return "None"
	}
}
