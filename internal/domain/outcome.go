package domain

// Outcome describes what applying an event did. Rejections are outcomes,
// not errors: the event stream continues either way.
type Outcome string

const (
	OutcomeApplied           Outcome = "applied"
	OutcomeAccountLocked     Outcome = "account_locked"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeUnknownTx         Outcome = "unknown_tx"
	OutcomeNotHeld           Outcome = "not_held"
	OutcomeInvalid           Outcome = "invalid"
)

// Outcomes lists every outcome in reporting order.
var Outcomes = []Outcome{
	OutcomeApplied,
	OutcomeAccountLocked,
	OutcomeInsufficientFunds,
	OutcomeUnknownTx,
	OutcomeNotHeld,
	OutcomeInvalid,
}

// Applied reports whether the event changed account state.
func (o Outcome) Applied() bool {
	return o == OutcomeApplied
}

func (o Outcome) String() string {
	return string(o)
}
