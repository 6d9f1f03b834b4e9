// Package pipeline drives one change-stream record through decode, classify,
// map, audit write and publish. Nothing a record does escapes its own
// Process call: every failure is logged and reported on the Outcome.
package pipeline

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashitosh07/lambda/internal/audit"
	"github.com/ashitosh07/lambda/internal/envelope"
	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/ashitosh07/lambda/internal/mapper"
	"github.com/ashitosh07/lambda/pkg/ctxkey"
)

type Store interface {
	Put(ctx context.Context, entry audit.Entry) error
}

type Publisher interface {
	Create(ctx context.Context, endpoint string, body []byte) ([]byte, error)
	Replace(ctx context.Context, endpoint string, body []byte) ([]byte, error)
}

// Observer receives every Outcome once its record is finished.
type Observer interface {
	Observe(ctx context.Context, outcome Outcome)
}

type Options struct {
	Family          mapper.Family
	Mapper          mapper.Mapper
	Store           Store
	Publisher       Publisher
	CreateEndpoint  string
	ReplaceEndpoint string
	Observer        Observer
	Logger          *slog.Logger
}

type Pipeline struct {
	family          mapper.Family
	mapper          mapper.Mapper
	store           Store
	publisher       Publisher
	createEndpoint  string
	replaceEndpoint string
	observer        Observer
	logger          *slog.Logger
}

func New(opts Options) (*Pipeline, error) {
	if opts.Family == "" {
		return nil, errors.New("entity family is required")
	}
	if opts.Mapper == nil {
		return nil, errors.New("mapper is required")
	}
	if opts.Store == nil {
		return nil, errors.New("audit store is required")
	}
	if opts.Publisher == nil {
		return nil, errors.New("publisher is required")
	}

	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		family:          opts.Family,
		mapper:          opts.Mapper,
		store:           opts.Store,
		publisher:       opts.Publisher,
		createEndpoint:  opts.CreateEndpoint,
		replaceEndpoint: opts.ReplaceEndpoint,
		observer:        observer,
		logger:          logger.With("family", string(opts.Family)),
	}, nil
}

// ProcessBatch handles the records one after the other, in order.
func (p *Pipeline) ProcessBatch(ctx context.Context, records []Record) BatchSummary {
	summary := BatchSummary{Outcomes: make([]Outcome, 0, len(records))}
	for _, rec := range records {
		summary.add(p.Process(ctx, rec))
	}

	p.logger.InfoContext(ctx, "batch processed",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary
}

func (p *Pipeline) Process(ctx context.Context, rec Record) (out Outcome) {
	start := time.Now()
	ctx = ctxkey.SetPartitionKey(ctx, rec.PartitionKey)
	ctx = ctxkey.SetSequenceNumber(ctx, rec.SequenceNumber)

	out = Outcome{Record: rec}
	defer func() {
		if r := recover(); r != nil {
			p.fail(ctx, &out, fmt.Errorf("panic while processing record: %v", r))
		}
		out.Duration = time.Since(start)
		p.observe(ctx, out)
	}()

	p.enter(ctx, &out, StateReceived, "bytes", len(rec.Data))

	ev, err := envelope.Decode(rec.Data)
	if err != nil {
		p.fail(ctx, &out, err)
		return out
	}
	out.Operation = ev.OperationType
	p.enter(ctx, &out, StateDecoded, "shape", string(ev.Shape))

	if !ev.OperationType.Supported() {
		out.Skipped = true
		p.enter(ctx, &out, StateDone, "operation", string(ev.OperationType), "skipped", true)
		return out
	}
	p.enter(ctx, &out, StateClassified, "operation", string(ev.OperationType))

	record, err := p.mapper.Map(ev.FullDocument)
	if err != nil {
		p.fail(ctx, &out, classify(err, failure.Mapping, "map "+string(p.family)))
		return out
	}
	body, err := json.Marshal(record)
	if err != nil {
		p.fail(ctx, &out, failure.Mapping("marshal "+string(p.family), err))
		return out
	}
	p.enter(ctx, &out, StateMapped)

	// both sinks are attempted whatever the other one does
	entry := audit.NewEntry(rec.PartitionKey, audit.ResolveIdentity(ev.FullDocument), record)
	if err := p.store.Put(ctx, entry); err != nil {
		out.StoreErr = classify(err, failure.StoreWrite, "audit put")
		p.logger.ErrorContext(ctx, "audit write failed", "error", out.StoreErr)
	} else {
		p.enter(ctx, &out, StateAuditWritten, "id", entry.Identity.ID, "user_id", entry.Identity.UserID)
	}

	resp, err := p.publish(ctx, ev.OperationType, body)
	if err != nil {
		out.PublishErr = classify(err, failure.Publish, "publish")
		p.logger.ErrorContext(ctx, "publish failed", "operation", string(ev.OperationType), "error", out.PublishErr)
	} else {
		p.enter(ctx, &out, StatePublished, "operation", string(ev.OperationType), "response", string(resp))
	}

	if out.StoreErr != nil || out.PublishErr != nil {
		p.fail(ctx, &out, errors.Join(out.StoreErr, out.PublishErr))
		return out
	}
	p.enter(ctx, &out, StateDone)
	return out
}

// observe hands the outcome to the observer. A panicking observer is logged
// and never reaches the batch.
func (p *Pipeline) observe(ctx context.Context, out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "observer panicked", "state", string(out.State), "panic", fmt.Sprint(r))
		}
	}()
	p.observer.Observe(ctx, out)
}

func (p *Pipeline) publish(ctx context.Context, op envelope.Operation, body []byte) ([]byte, error) {
	if op == envelope.OperationUpdate {
		return p.publisher.Replace(ctx, p.replaceEndpoint, body)
	}
	return p.publisher.Create(ctx, p.createEndpoint, body)
}

func (p *Pipeline) enter(ctx context.Context, out *Outcome, state State, attrs ...any) {
	out.State = state
	p.logger.InfoContext(ctx, "record "+string(state), attrs...)
}

func (p *Pipeline) fail(ctx context.Context, out *Outcome, err error) {
	from := out.State
	out.State = StateFailed
	out.Err = err

	kind, _ := failure.KindOf(err)
	p.logger.ErrorContext(ctx, "record failed", "from", string(from), "kind", string(kind), "error", err)
}

// classify keeps an already classified error and wraps anything else in kind.
func classify(err error, wrap func(op string, err error) error, op string) error {
	if _, ok := failure.KindOf(err); ok {
		return err
	}
	return wrap(op, err)
}

type nopObserver struct{}

func (nopObserver) Observe(context.Context, Outcome) {}
