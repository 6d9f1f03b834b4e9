// Package failure classifies the errors a record can hit on its way through
// the pipeline. Every kind is caught at the record boundary; the kind only
// drives logging and metrics.
package failure

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindDecode     Kind = "decode"
	KindMapping    Kind = "mapping"
	KindStoreWrite Kind = "store_write"
	KindPublish    Kind = "publish"
)

var (
	ErrDecode     = errors.New("decode failed")
	ErrMapping    = errors.New("mapping failed")
	ErrStoreWrite = errors.New("store write failed")
	ErrPublish    = errors.New("publish failed")
)

var sentinels = map[Kind]error{
	KindDecode:     ErrDecode,
	KindMapping:    ErrMapping,
	KindStoreWrite: ErrStoreWrite,
	KindPublish:    ErrPublish,
}

// Error wraps an underlying error with its kind and the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinel as well as the wrapped error.
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

func Decode(op string, err error) error {
	return &Error{Kind: KindDecode, Op: op, Err: err}
}

func Mapping(op string, err error) error {
	return &Error{Kind: KindMapping, Op: op, Err: err}
}

func StoreWrite(op string, err error) error {
	return &Error{Kind: KindStoreWrite, Op: op, Err: err}
}

func Publish(op string, err error) error {
	return &Error{Kind: KindPublish, Op: op, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}
