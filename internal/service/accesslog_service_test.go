package service_test

import (
	"content-vault/internal/model"
	"content-vault/internal/secureview"
	"content-vault/internal/service"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListLogs_LimitClamping(t *testing.T) {
	ctx := dbContext()

	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "Zero limit defaults", limit: 0, expectedLimit: 100},
		{name: "Negative limit defaults", limit: -1, expectedLimit: 100},
		{name: "Too large limit defaults", limit: 1000, expectedLimit: 100},
		{name: "Valid limit passed through", limit: 50, expectedLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logRepo := new(MockAccessLogRepository)
			svc := service.NewAccessLogService(logRepo)

			logRepo.On("ListByOwner", ctx, mock.Anything, "owner1", tt.expectedLimit).
				Return([]model.AccessLogEntry{}, nil)

			_, err := svc.ListLogs(ctx, "owner1", tt.limit)

			require.NoError(t, err)
			logRepo.AssertExpectations(t)
		})
	}
}

func TestReportSuspicious_UnknownReasonRejected(t *testing.T) {
	logRepo := new(MockAccessLogRepository)
	svc := service.NewAccessLogService(logRepo)
	ctx := dbContext()

	err := svc.ReportSuspicious(ctx, "user1", "content1", "made-up-reason", model.RequestMeta{})

	require.Error(t, err)
	invalid, ok := service.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "reason", invalid.Field)
	logRepo.AssertNumberOfCalls(t, "Append", 0)
}

func TestReportSuspicious_Success(t *testing.T) {
	logRepo := new(MockAccessLogRepository)
	svc := service.NewAccessLogService(logRepo)
	ctx := dbContext()

	logRepo.On("Append", ctx, mock.Anything, mock.MatchedBy(func(entry *model.AccessLogEntry) bool {
		return entry.EventType == model.EventSuspiciousActivity &&
			entry.Detail != nil && *entry.Detail == string(secureview.ReasonPrintScreen) &&
			entry.ContentUUID != nil && *entry.ContentUUID == "content1"
	})).Return(nil)

	err := svc.ReportSuspicious(ctx, "user1", "content1", string(secureview.ReasonPrintScreen), model.RequestMeta{UserAgent: "ua"})

	require.NoError(t, err)
	logRepo.AssertExpectations(t)
}

func TestReportSuspicious_AppendFailureSwallowed(t *testing.T) {
	logRepo := new(MockAccessLogRepository)
	svc := service.NewAccessLogService(logRepo)
	ctx := dbContext()

	logRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(errors.New("журнал недоступен"))

	// просмотр не должен деградировать из-за сбоя журнала
	err := svc.ReportSuspicious(ctx, "user1", "", string(secureview.ReasonVisibilityLost), model.RequestMeta{})

	assert.NoError(t, err)
}
