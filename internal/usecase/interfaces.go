package usecase

import (
	"github.com/iho/txledger/internal/domain"
)

// EventReader yields ledger events in log order. Read returns io.EOF once
// the source is exhausted; any other error is fatal to the replay.
type EventReader interface {
	Read() (domain.Event, error)
}

// SummaryWriter receives the final account summaries.
type SummaryWriter interface {
	Write(summary domain.AccountSummary) error
	Flush() error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
