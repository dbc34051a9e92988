package csv

import (
	stdcsv "encoding/csv"
	"io"
	"strconv"

	"github.com/iho/txledger/internal/domain"
)

// Header is the summary output header row.
var Header = []string{"client", "available", "held", "total", "locked"}

// Writer encodes account summaries as delimited text. The header is
// written before the first row, or on Flush if there are no rows.
type Writer struct {
	w           *stdcsv.Writer
	precision   int32
	wroteHeader bool
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := newOptions(opts)

	cw := stdcsv.NewWriter(w)
	cw.Comma = o.delimiter

	return &Writer{
		w:         cw,
		precision: o.precision,
	}
}

// Write encodes one summary row.
func (w *Writer) Write(summary domain.AccountSummary) error {
	if err := w.header(); err != nil {
		return err
	}
	return w.w.Write([]string{
		strconv.FormatUint(uint64(summary.Client), 10),
		domain.FormatAmount(summary.Available, w.precision),
		domain.FormatAmount(summary.Held, w.precision),
		domain.FormatAmount(summary.Total, w.precision),
		strconv.FormatBool(summary.Locked),
	})
}

// Flush writes any buffered data and reports the first write error.
func (w *Writer) Flush() error {
	if err := w.header(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

func (w *Writer) header() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	return w.w.Write(Header)
}
