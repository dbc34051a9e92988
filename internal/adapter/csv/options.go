package csv

import "github.com/iho/txledger/internal/domain"

type options struct {
	delimiter rune
	precision int32
}

// Option configures a Reader or Writer.
type Option func(*options)

// WithDelimiter sets the field delimiter. The default is ','.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.delimiter = r
	}
}

// WithPrecision sets the number of fractional digits written for amounts.
// Readers ignore it.
func WithPrecision(p int32) Option {
	return func(o *options) {
		o.precision = p
	}
}

func newOptions(opts []Option) options {
	o := options{
		delimiter: ',',
		precision: domain.DefaultAmountPrecision,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
