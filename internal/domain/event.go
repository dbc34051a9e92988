package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EventType is the kind of ledger event.
type EventType string

// Event types
const (
	EventTypeDeposit    EventType = "deposit"
	EventTypeWithdrawal EventType = "withdrawal"
	EventTypeDispute    EventType = "dispute"
	EventTypeResolve    EventType = "resolve"
	EventTypeChargeback EventType = "chargeback"
)

// EventTypes lists every event type.
var EventTypes = []EventType{
	EventTypeDeposit,
	EventTypeWithdrawal,
	EventTypeDispute,
	EventTypeResolve,
	EventTypeChargeback,
}

// ParseEventType maps a lowercase name to an EventType. Surrounding
// whitespace is ignored; any other spelling is rejected.
func ParseEventType(s string) (EventType, error) {
	t := EventType(strings.TrimSpace(s))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeDeposit, EventTypeWithdrawal, EventTypeDispute, EventTypeResolve, EventTypeChargeback:
		return true
	}
	return false
}

// RequiresAmount reports whether events of this type carry an amount.
func (t EventType) RequiresAmount() bool {
	return t == EventTypeDeposit || t == EventTypeWithdrawal
}

func (t EventType) String() string {
	return string(t)
}

// Event is one row of the ledger log. Amount is only meaningful for
// deposits and withdrawals.
type Event struct {
	Type   EventType
	Client ClientID
	Tx     TxID
	Amount decimal.NullDecimal
}

// Validate checks the event is well formed.
func (e Event) Validate() error {
	if !e.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, string(e.Type))
	}
	if !e.Type.RequiresAmount() {
		return nil
	}
	if !e.Amount.Valid {
		return fmt.Errorf("%w: %s", ErrMissingAmount, e.Type)
	}
	return ValidateAmount(e.Amount.Decimal)
}
