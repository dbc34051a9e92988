package csv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/txledger/internal/domain"
)

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(domain.AccountSummary{
		Client:    1,
		Available: decimal.RequireFromString("1.5"),
		Held:      decimal.Zero,
		Total:     decimal.RequireFromString("1.5"),
	}))
	require.NoError(t, w.Write(domain.AccountSummary{
		Client:    2,
		Available: decimal.RequireFromString("-3"),
		Held:      decimal.RequireFromString("3"),
		Total:     decimal.Zero,
		Locked:    true,
	}))
	require.NoError(t, w.Flush())

	want := "client,available,held,total,locked\n" +
		"1,1.5000,0.0000,1.5000,false\n" +
		"2,-3.0000,3.0000,0.0000,true\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_EmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WithDelimiter('\t'), WithPrecision(2))

	require.NoError(t, w.Flush())
	assert.Equal(t, "client\tavailable\theld\ttotal\tlocked\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_FlushSurfacesError(t *testing.T) {
	w := NewWriter(failingWriter{})

	require.NoError(t, w.Write(domain.AccountSummary{Client: 1}))
	assert.EqualError(t, w.Flush(), "disk full")
}
