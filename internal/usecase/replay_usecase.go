package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/infrastructure/metrics"
	"github.com/iho/txledger/internal/ledger"
)

// Report summarizes a finished replay.
type Report struct {
	RunID    string
	Events   int
	Outcomes map[domain.Outcome]int
	Accounts int
	Locked   int
	Duration time.Duration
}

// Rejected returns the number of events that did not change state.
func (r *Report) Rejected() int {
	return r.Events - r.Outcomes[domain.OutcomeApplied]
}

// ReplayUseCase replays an event log into a fresh ledger and writes the
// resulting account summaries.
type ReplayUseCase struct {
	idGen   IDGenerator
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewReplayUseCase creates a new ReplayUseCase. metrics may be nil.
func NewReplayUseCase(idGen IDGenerator, logger zerolog.Logger, metrics *metrics.Metrics) *ReplayUseCase {
	return &ReplayUseCase{
		idGen:   idGen,
		logger:  logger,
		metrics: metrics,
	}
}

// Run applies every event from reader to a new ledger, then writes one
// summary per account to writer in ascending client order. Read and write
// errors abort the run; rejected events do not.
func (uc *ReplayUseCase) Run(ctx context.Context, reader EventReader, writer SummaryWriter) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:    uc.idGen.Generate(),
		Outcomes: make(map[domain.Outcome]int, len(domain.Outcomes)),
	}
	log := uc.logger.With().Str("run_id", report.RunID).Logger()

	l := ledger.New()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		event, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if uc.metrics != nil {
				uc.metrics.ReadErrors.Inc()
			}
			return nil, fmt.Errorf("read event: %w", err)
		}

		outcome := l.Apply(event)
		report.Events++
		report.Outcomes[outcome]++

		if uc.metrics != nil {
			uc.metrics.EventsProcessed.WithLabelValues(event.Type.String(), outcome.String()).Inc()
		}
		if !outcome.Applied() {
			log.Debug().
				Str("type", event.Type.String()).
				Uint16("client", uint16(event.Client)).
				Uint32("tx", uint32(event.Tx)).
				Str("outcome", outcome.String()).
				Msg("event rejected")
		}
	}

	for _, summary := range l.Summaries() {
		if err := writer.Write(summary); err != nil {
			return nil, fmt.Errorf("write summary for client %d: %w", summary.Client, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("flush summaries: %w", err)
	}

	report.Accounts = l.Len()
	report.Locked = l.LockedCount()
	report.Duration = time.Since(start)

	if uc.metrics != nil {
		uc.metrics.Accounts.Set(float64(report.Accounts))
		uc.metrics.LockedAccounts.Set(float64(report.Locked))
		uc.metrics.ReplayDuration.Observe(report.Duration.Seconds())
	}

	log.Info().
		Int("events", report.Events).
		Int("rejected", report.Rejected()).
		Int("accounts", report.Accounts).
		Int("locked", report.Locked).
		Dur("duration", report.Duration).
		Msg("replay finished")

	return report, nil
}
