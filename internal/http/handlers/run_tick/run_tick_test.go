package runtick

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"orderping/internal/core/domain/ratelimiter"
	service "orderping/internal/core/services/reconcile_reminders"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	processedCount int
	err            error
	runCount       int
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.runCount++
	if s.err != nil {
		return result, s.err
	}
	result.ProcessedCount = s.processedCount
	return result, nil
}

func TestRunTickHandler(t *testing.T) {
	cases := []struct {
		id             string
		processedCount int
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "success",
			processedCount: 3,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"processedCount":3}`,
		},
		{
			id:             "empty tick",
			processedCount: 0,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"processedCount":0}`,
		},
		{
			id:             "rate limit exceeded",
			err:            ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"success":false,"error":"rate limit exceeded"}`,
		},
		{
			id:             "internal error",
			err:            errors.New("test error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"internal error"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/reconciliation/ticks", nil)
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{processedCount: testcase.processedCount, err: testcase.err}
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedBody, rr.Body.String())
			assert.Equal(t, 1, service.runCount)
		})
	}
}
