// Package idgen produces the run ids that tag every log line and report of
// a replay.
package idgen

import (
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunIDGenerator issues one ULID per replay run. ULIDs sort by start time,
// so run ids in collected logs order the same way the runs did.
type RunIDGenerator struct {
	now     func() time.Time
	entropy io.Reader
}

// NewRunIDGenerator creates a RunIDGenerator on the wall clock.
func NewRunIDGenerator() *RunIDGenerator {
	return newRunIDGenerator(time.Now)
}

func newRunIDGenerator(now func() time.Time) *RunIDGenerator {
	return &RunIDGenerator{
		now:     now,
		entropy: ulid.DefaultEntropy(),
	}
}

// Generate returns a new run id stamped with the current time.
func (g *RunIDGenerator) Generate() string {
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
