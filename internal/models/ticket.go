package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket statuses. A ticket is terminal once won or lost and is never
// re-evaluated.
const (
	TicketStatusOpen = "open"
	TicketStatusWon  = "won"
	TicketStatusLost = "lost"
)

// Ticket is a user's bet slip: one or more bets with a stake
type Ticket struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"user_id"`
	Status    string          `json:"status"`
	Bets      []Bet           `json:"bets"`
	Stake     decimal.Decimal `json:"stake"`
	CreatedAt time.Time       `json:"created_at"`
}

// Bet is a single wagered selection tied to one match
type Bet struct {
	MatchID   string          `json:"match_id"`
	Selection string          `json:"selection"`
	Odds      decimal.Decimal `json:"odds"`
}

// IsTerminal reports whether the ticket has already been settled
func (t *Ticket) IsTerminal() bool {
	return t.Status == TicketStatusWon || t.Status == TicketStatusLost
}

// TotalOdds multiplies the odds of every bet on the ticket
func (t *Ticket) TotalOdds() decimal.Decimal {
	total := decimal.NewFromInt(1)
	for _, b := range t.Bets {
		if b.Odds.IsPositive() {
			total = total.Mul(b.Odds)
		}
	}
	return total
}

// PotentialPayout returns stake times combined odds
func (t *Ticket) PotentialPayout() decimal.Decimal {
	return t.Stake.Mul(t.TotalOdds())
}

// Device is a registered push target. The token is opaque to the core.
type Device struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}
