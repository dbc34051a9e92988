package domain

import (
	"github.com/shopspring/decimal"
)

// ClientID identifies an account holder.
type ClientID uint16

// TxID identifies a transaction within the event stream.
type TxID uint32

// Account is the per-client balance state.
//
// Total is always Available plus the sum of the held amounts. Available only
// goes negative through disputes, never through withdrawals.
type Account struct {
	client    ClientID
	available decimal.Decimal
	held      map[TxID]decimal.Decimal
	deposits  map[TxID]decimal.Decimal
	locked    bool
}

// NewAccount creates an empty, unlocked account.
func NewAccount(client ClientID) *Account {
	return &Account{
		client:    client,
		available: decimal.Zero,
		held:      make(map[TxID]decimal.Decimal),
		deposits:  make(map[TxID]decimal.Decimal),
	}
}

// Client returns the owning client id.
func (a *Account) Client() ClientID {
	return a.client
}

// Available returns the withdrawable balance.
func (a *Account) Available() decimal.Decimal {
	return a.available
}

// Held returns the sum of all disputed amounts.
func (a *Account) Held() decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range a.held {
		sum = sum.Add(amount)
	}
	return sum
}

// Total returns available plus held.
func (a *Account) Total() decimal.Decimal {
	return a.available.Add(a.Held())
}

// Locked reports whether the account has been charged back.
func (a *Account) Locked() bool {
	return a.locked
}

// IsHeld reports whether tx is currently under dispute.
func (a *Account) IsHeld(tx TxID) bool {
	_, ok := a.held[tx]
	return ok
}

// DepositAmount returns the recorded amount of deposit tx.
func (a *Account) DepositAmount(tx TxID) (decimal.Decimal, bool) {
	amount, ok := a.deposits[tx]
	return amount, ok
}

// Deposit credits available funds and records the amount under tx.
// A reused tx overwrites the recorded amount.
func (a *Account) Deposit(tx TxID, amount decimal.Decimal) Outcome {
	a.available = a.available.Add(amount)
	a.deposits[tx] = amount
	return OutcomeApplied
}

// Withdraw debits available funds if they cover amount.
func (a *Account) Withdraw(amount decimal.Decimal) Outcome {
	if amount.GreaterThan(a.available) {
		return OutcomeInsufficientFunds
	}
	a.available = a.available.Sub(amount)
	return OutcomeApplied
}

// Dispute moves the amount of deposit tx from available to held.
// Available may go negative. Disputing a held tx repeats the move.
func (a *Account) Dispute(tx TxID) Outcome {
	amount, ok := a.deposits[tx]
	if !ok {
		return OutcomeUnknownTx
	}
	a.available = a.available.Sub(amount)
	a.held[tx] = amount
	return OutcomeApplied
}

// Resolve releases the hold on tx back into available funds.
// The deposit stays on record and can be disputed again.
func (a *Account) Resolve(tx TxID) Outcome {
	amount, ok := a.held[tx]
	if !ok {
		return OutcomeNotHeld
	}
	delete(a.held, tx)
	a.available = a.available.Add(amount)
	return OutcomeApplied
}

// Chargeback forfeits the hold on tx and locks the account.
func (a *Account) Chargeback(tx TxID) Outcome {
	if _, ok := a.held[tx]; !ok {
		return OutcomeNotHeld
	}
	delete(a.held, tx)
	a.locked = true
	return OutcomeApplied
}

// Summary projects the account into a read-only summary.
func (a *Account) Summary() AccountSummary {
	held := a.Held()
	return AccountSummary{
		Client:    a.client,
		Available: a.available,
		Held:      held,
		Total:     a.available.Add(held),
		Locked:    a.locked,
	}
}

// AccountSummary is the externally reported state of an account.
type AccountSummary struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
