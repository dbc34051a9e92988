package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		input   string
		want    EventType
		wantErr bool
	}{
		{"deposit", EventTypeDeposit, false},
		{" withdrawal ", EventTypeWithdrawal, false},
		{"dispute", EventTypeDispute, false},
		{"Deposit", "", true},
		{"DISPUTE", "", true},
		{"resolve", EventTypeResolve, false},
		{"chargeback", EventTypeChargeback, false},
		{"transfer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseEventType(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownEventType) {
				t.Fatalf("ParseEventType(%q) error = %v, want ErrUnknownEventType", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseEventType(%q) = %q, %v", tt.input, got, err)
		}
	}
}

func TestEvent_Validate(t *testing.T) {
	amount := decimal.NewNullDecimal(decimal.NewFromInt(1))

	tests := []struct {
		name    string
		event   Event
		wantErr error
	}{
		{name: "deposit with amount", event: Event{Type: EventTypeDeposit, Amount: amount}},
		{name: "dispute without amount", event: Event{Type: EventTypeDispute}},
		{name: "chargeback ignores amount", event: Event{Type: EventTypeChargeback, Amount: amount}},
		{name: "deposit without amount", event: Event{Type: EventTypeDeposit}, wantErr: ErrMissingAmount},
		{name: "withdrawal without amount", event: Event{Type: EventTypeWithdrawal}, wantErr: ErrMissingAmount},
		{
			name:    "negative withdrawal",
			event:   Event{Type: EventTypeWithdrawal, Amount: decimal.NewNullDecimal(decimal.NewFromInt(-1))},
			wantErr: ErrNegativeAmount,
		},
		{name: "unknown type", event: Event{Type: "Deposit", Amount: amount}, wantErr: ErrUnknownEventType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrInvalidEvent) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
