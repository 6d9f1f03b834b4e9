package envelope

import (
	"fmt"

	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/internal/failure"
)

type Operation string

const (
	OperationInsert Operation = "insert"
	OperationUpdate Operation = "update"
)

// Supported reports whether the operation is forwarded upstream. Every other
// change type (delete, replace, invalidate, ...) is skipped.
func (o Operation) Supported() bool {
	return o == OperationInsert || o == OperationUpdate
}

type Shape string

const (
	ShapeFlat    Shape = "flat"
	ShapeWrapped Shape = "wrapped"
)

// Event is one change-stream entry. FullDocument is nil when the envelope
// carried no post-image.
type Event struct {
	Shape         Shape
	OperationType Operation
	FullDocument  document.Document
}

// Decode accepts both envelope shapes emitted upstream:
//
//	{"operationType": "...", "fullDocument": {...}}
//	{"events": [{"event": {"operationType": "...", "fullDocument": {...}}}]}
func Decode(data []byte) (Event, error) {
	root, err := document.Parse(data)
	if err != nil {
		return Event{}, failure.Decode("decode change event", err)
	}

	body, shape := root, ShapeFlat
	if wrapped, ok := root.Lookup("events", "0", "event").Object(); ok {
		body, shape = wrapped, ShapeWrapped
	} else if root.Lookup("events").Found() {
		return Event{}, failure.Decode("decode change event", fmt.Errorf("events envelope has no events[0].event object"))
	}

	ev := Event{
		Shape:         shape,
		OperationType: Operation(body.Lookup("operationType").StringOr("")),
	}
	if full, ok := body.Lookup("fullDocument").Object(); ok {
		ev.FullDocument = full
	}

	return ev, nil
}
