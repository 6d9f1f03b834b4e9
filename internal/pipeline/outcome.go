package pipeline

import (
	"time"

	"github.com/ashitosh07/lambda/internal/envelope"
)

// Record is one raw stream record as handed over by the dispatcher.
type Record struct {
	PartitionKey   string
	SequenceNumber string
	Data           []byte
}

type State string

const (
	StateReceived     State = "received"
	StateDecoded      State = "decoded"
	StateClassified   State = "classified"
	StateMapped       State = "mapped"
	StateAuditWritten State = "audit_written"
	StatePublished    State = "published"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Outcome is the end state of one record. A record whose audit write and
// publish disagree ends Failed with the failing sink recorded, so a later
// reconciliation can find the divergence.
type Outcome struct {
	Record     Record
	Operation  envelope.Operation
	State      State
	Skipped    bool
	Err        error
	StoreErr   error
	PublishErr error
	Duration   time.Duration
}

func (o Outcome) Failed() bool {
	return o.State == StateFailed
}

type BatchSummary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
	Outcomes  []Outcome
}

func (s *BatchSummary) add(o Outcome) {
	s.Total++
	switch {
	case o.Failed():
		s.Failed++
	case o.Skipped:
		s.Skipped++
	default:
		s.Succeeded++
	}
	s.Outcomes = append(s.Outcomes, o)
}
