package metric

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ashitosh07/lambda/internal/envelope"
	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/ashitosh07/lambda/internal/mapper"
	"github.com/ashitosh07/lambda/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver_Observe(t *testing.T) {
	o, err := NewObserver(mapper.FamilyTransaction)
	require.NoError(t, err)

	ctx := context.Background()
	o.Observe(ctx, pipeline.Outcome{Operation: envelope.OperationInsert, State: pipeline.StateDone, Duration: 20 * time.Millisecond})
	o.Observe(ctx, pipeline.Outcome{Operation: envelope.OperationInsert, State: pipeline.StateDone, Duration: 30 * time.Millisecond})
	o.Observe(ctx, pipeline.Outcome{Operation: "delete", State: pipeline.StateDone, Skipped: true})
	o.Observe(ctx, pipeline.Outcome{State: pipeline.StateFailed, Err: failure.Decode("decode change event", errors.New("bad json"))})
	o.Observe(ctx, pipeline.Outcome{
		Operation:  envelope.OperationUpdate,
		State:      pipeline.StateFailed,
		StoreErr:   failure.StoreWrite("audit put", errors.New("throttled")),
		PublishErr: failure.Publish("upstream PUT", errors.New("503")),
	})
	o.Observe(ctx, pipeline.Outcome{
		Operation:  envelope.OperationUpdate,
		State:      pipeline.StateFailed,
		PublishErr: failure.Publish("upstream PUT", errors.New("503")),
		Err:        failure.Publish("upstream PUT", errors.New("503")),
	})

	family := string(mapper.FamilyTransaction)
	assert.Equal(t, 2.0, testutil.ToFloat64(o.recordsTotal.WithLabelValues(family, "insert", "done")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.recordsTotal.WithLabelValues(family, "delete", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.recordsTotal.WithLabelValues(family, "unknown", "failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(o.recordsTotal.WithLabelValues(family, "update", "failed")))

	assert.Equal(t, 1.0, testutil.ToFloat64(o.storeFailures.WithLabelValues(family)))
	assert.Equal(t, 2.0, testutil.ToFloat64(o.publishFailures.WithLabelValues(family, "update")))

	assert.Equal(t, 1.0, testutil.ToFloat64(o.failuresByKind.WithLabelValues(family, "decode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.failuresByKind.WithLabelValues(family, "store_write_and_publish")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.failuresByKind.WithLabelValues(family, "publish")))

	assert.Equal(t, 1, testutil.CollectAndCount(o.duration))
}

func TestPusher_Flush(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		emptyURL      bool
		expectedError bool
	}{
		{
			name:   "success - pushes the registry",
			status: http.StatusOK,
		},
		{
			name:          "error - gateway rejects the push",
			status:        http.StatusBadRequest,
			expectedError: true,
		},
		{
			name:          "error - url not configured",
			emptyURL:      true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method, path string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				method, path = r.Method, r.URL.Path
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			o, err := NewObserver(mapper.FamilyProduct)
			require.NoError(t, err)
			o.Observe(context.Background(), pipeline.Outcome{Operation: envelope.OperationInsert, State: pipeline.StateDone})

			url := server.URL
			if tt.emptyURL {
				url = ""
			}
			err = NewPusher(url, "aml-stream-consumer", o.Registry()).Flush(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.MethodPut, method)
			assert.Equal(t, "/metrics/job/aml-stream-consumer", path)
		})
	}
}
