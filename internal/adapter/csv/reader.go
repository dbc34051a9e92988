// Package csv reads ledger events from and writes account summaries to
// delimited text.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iho/txledger/internal/domain"
)

// Column names of the event log header.
const (
	ColumnType   = "type"
	ColumnClient = "client"
	ColumnTx     = "tx"
	ColumnAmount = "amount"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidField  = errors.New("invalid field")
)

// ParseError reports a malformed row.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader decodes ledger events from a delimited stream with a header row.
// Columns are located by their lowercase header name, fields are trimmed, and the amount
// column may be empty or absent for events that carry no amount. Amounts
// are kept exactly as written.
type Reader struct {
	r       *stdcsv.Reader
	columns map[string]int
	started bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := newOptions(opts)

	cr := stdcsv.NewReader(r)
	cr.Comma = o.delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return &Reader{
		r: cr,
	}
}

// Read returns the next event, or io.EOF when the stream is exhausted.
// Malformed rows are reported as *ParseError.
func (r *Reader) Read() (domain.Event, error) {
	if !r.started {
		if err := r.readHeader(); err != nil {
			return domain.Event{}, err
		}
	}

	record, err := r.r.Read()
	if err != nil {
		return domain.Event{}, r.wrap(err)
	}
	line, _ := r.r.FieldPos(0)

	event, err := r.parse(record)
	if err != nil {
		return domain.Event{}, &ParseError{Line: line, Err: err}
	}
	return event, nil
}

func (r *Reader) readHeader() error {
	record, err := r.r.Read()
	if err != nil {
		return r.wrap(err)
	}
	r.started = true

	r.columns = make(map[string]int, len(record))
	for i, name := range record {
		r.columns[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{ColumnType, ColumnClient, ColumnTx} {
		if _, ok := r.columns[name]; !ok {
			return &ParseError{Line: 1, Err: fmt.Errorf("%w: %s", ErrMissingColumn, name)}
		}
	}
	return nil
}

func (r *Reader) parse(record []string) (domain.Event, error) {
	eventType, err := domain.ParseEventType(r.field(record, ColumnType))
	if err != nil {
		return domain.Event{}, err
	}

	client, err := strconv.ParseUint(r.field(record, ColumnClient), 10, 16)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: client %q", ErrInvalidField, r.field(record, ColumnClient))
	}

	tx, err := strconv.ParseUint(r.field(record, ColumnTx), 10, 32)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: tx %q", ErrInvalidField, r.field(record, ColumnTx))
	}

	amount, err := domain.ParseAmount(r.field(record, ColumnAmount))
	if err != nil {
		return domain.Event{}, err
	}

	event := domain.Event{
		Type:   eventType,
		Client: domain.ClientID(client),
		Tx:     domain.TxID(tx),
	}
	if eventType.RequiresAmount() {
		event.Amount = amount
	}

	if err := event.Validate(); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// field returns the trimmed value of column, or "" if the row is short or
// the column is not in the header.
func (r *Reader) field(record []string, column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (r *Reader) wrap(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	var csvErr *stdcsv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return err
}
