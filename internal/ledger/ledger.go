// Package ledger implements the account state machine that replays ledger
// events against per-client accounts.
package ledger

import (
	"cmp"
	"iter"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
)

// Ledger owns every account seen during a replay. It is not safe for
// concurrent use; one caller drives Apply and then reads the snapshot.
type Ledger struct {
	accounts map[domain.ClientID]*domain.Account
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[domain.ClientID]*domain.Account),
	}
}

// Apply applies one event to the addressed account and reports the outcome.
// It never fails: insufficient funds, unknown transactions and locked
// accounts leave state untouched and are reported through the Outcome.
func (l *Ledger) Apply(event domain.Event) domain.Outcome {
	account := l.account(event.Client)
	if account.Locked() {
		return domain.OutcomeAccountLocked
	}

	switch event.Type {
	case domain.EventTypeDeposit:
		if !event.Amount.Valid {
			return domain.OutcomeInvalid
		}
		return account.Deposit(event.Tx, event.Amount.Decimal)
	case domain.EventTypeWithdrawal:
		if !event.Amount.Valid {
			return domain.OutcomeInvalid
		}
		return account.Withdraw(event.Amount.Decimal)
	case domain.EventTypeDispute:
		return account.Dispute(event.Tx)
	case domain.EventTypeResolve:
		return account.Resolve(event.Tx)
	case domain.EventTypeChargeback:
		return account.Chargeback(event.Tx)
	default:
		return domain.OutcomeInvalid
	}
}

// Snapshot yields a summary of every known account in no particular order.
func (l *Ledger) Snapshot() iter.Seq[domain.AccountSummary] {
	return func(yield func(domain.AccountSummary) bool) {
		for _, account := range l.accounts {
			if !yield(account.Summary()) {
				return
			}
		}
	}
}

// Summaries returns the snapshot ordered by client id.
func (l *Ledger) Summaries() []domain.AccountSummary {
	summaries := slices.Collect(l.Snapshot())
	slices.SortFunc(summaries, func(a, b domain.AccountSummary) int {
		return cmp.Compare(a.Client, b.Client)
	})
	return summaries
}

// Account returns a summary of the account for client, if it has been
// seen. Accounts themselves never leave the Ledger, so Apply stays their
// only writer.
func (l *Ledger) Account(client domain.ClientID) (domain.AccountSummary, bool) {
	account, ok := l.accounts[client]
	if !ok {
		return domain.AccountSummary{}, false
	}
	return account.Summary(), true
}

// DepositAmount returns the amount recorded for deposit tx of client.
func (l *Ledger) DepositAmount(client domain.ClientID, tx domain.TxID) (decimal.Decimal, bool) {
	account, ok := l.accounts[client]
	if !ok {
		return decimal.Decimal{}, false
	}
	return account.DepositAmount(tx)
}

// Len returns the number of known accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// LockedCount returns the number of locked accounts.
func (l *Ledger) LockedCount() int {
	n := 0
	for _, account := range l.accounts {
		if account.Locked() {
			n++
		}
	}
	return n
}

func (l *Ledger) account(client domain.ClientID) *domain.Account {
	account, ok := l.accounts[client]
	if !ok {
		account = domain.NewAccount(client)
		l.accounts[client] = account
	}
	return account
}
