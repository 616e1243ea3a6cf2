package repository_test

import (
	"content-vault/internal/model"
	"content-vault/internal/repository"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogRepository_Append(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAccessLogRepository(db)

	userUUID := "user1"
	contentUUID := "content1"
	entry := &model.AccessLogEntry{
		UserUUID:    &userUUID,
		ContentUUID: &contentUUID,
		EventType:   model.EventAccessGranted,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO access_logs")).
		WithArgs(sqlmock.AnyArg(), &userUUID, &contentUUID, nil,
			model.EventAccessGranted, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(context.Background(), db, entry)

	require.NoError(t, err)
	// uuid записи присваивается при добавлении, если не задан
	assert.NotEmpty(t, entry.UUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogRepository_Append_KeepsProvidedUUID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAccessLogRepository(db)

	entry := &model.AccessLogEntry{
		UUID:      "fixed-uuid",
		EventType: model.EventAccessDenied,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO access_logs")).
		WithArgs("fixed-uuid", nil, nil, nil, model.EventAccessDenied, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(context.Background(), db, entry)

	require.NoError(t, err)
	assert.Equal(t, "fixed-uuid", entry.UUID)
}

func TestAccessLogRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAccessLogRepository(db)

	now := time.Now()
	columns := []string{"uuid", "user_uuid", "content_uuid", "share_token", "event_type",
		"user_agent", "ip_address", "detail", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM access_logs")).
		WithArgs("owner1", 100).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("log1", "user1", "content1", nil, model.EventAccessGranted, "ua", "1.2.3.4", nil, now).
			AddRow("log2", "user2", nil, "tok", model.EventAccessDenied, nil, nil, nil, now))

	entries, err := repo.ListByOwner(context.Background(), db, "owner1", 100)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.EventAccessGranted, entries[0].EventType)
	assert.Nil(t, entries[1].ContentUUID)
	assert.NotNil(t, entries[1].ShareToken)
}
