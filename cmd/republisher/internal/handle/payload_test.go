package handle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ashitosh07/lambda/cmd/republisher/internal/handle/mocks"
	"github.com/ashitosh07/lambda/pkg/ctxkey"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/mock/gomock"
)

func TestPayload(t *testing.T) {
	payload := json.RawMessage(`{"events":[{"event":{"operationType":"insert"}}]}`)

	tests := []struct {
		name      string
		setupMock func(m *mocks.MockPayloadRepublisher)
	}{
		{
			name: "success - payload forwarded verbatim",
			setupMock: func(m *mocks.MockPayloadRepublisher) {
				m.EXPECT().
					Republish(gomock.Any(), []byte(payload)).
					DoAndReturn(func(ctx context.Context, _ []byte) error {
						if got := ctxkey.RequestID(ctx); got != "req-9" {
							t.Errorf("expected request id req-9, got %q", got)
						}
						return nil
					})
			},
		},
		{
			name: "success - republish failure still reports success",
			setupMock: func(m *mocks.MockPayloadRepublisher) {
				m.EXPECT().
					Republish(gomock.Any(), gomock.Any()).
					Return(errors.New("stream not found"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepublisher := mocks.NewMockPayloadRepublisher(ctrl)
			tt.setupMock(mockRepublisher)

			handler := Payload(mockRepublisher, slog.New(slog.NewJSONHandler(io.Discard, nil)))
			ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-9"})

			if err := handler(ctx, payload); err != nil {
				t.Errorf("expected nil error, got %v", err)
			}
		})
	}
}
