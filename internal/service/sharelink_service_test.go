package service_test

import (
	"content-vault/config"
	"content-vault/internal/model"
	"content-vault/internal/service"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== Моки репозиториев =====

type MockShareLinkRepository struct{ mock.Mock }

func (m *MockShareLinkRepository) Create(ctx context.Context, exec sqlx.ExtContext, link *model.ShareLink) error {
	return m.Called(ctx, exec, link).Error(0)
}

func (m *MockShareLinkRepository) GetByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.ShareLink, error) {
	args := m.Called(ctx, exec, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, linkUUID string) (*model.ShareLink, error) {
	args := m.Called(ctx, exec, linkUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) Deactivate(ctx context.Context, exec sqlx.ExtContext, linkUUID string, ownerUUID string) (bool, error) {
	args := m.Called(ctx, exec, linkUUID, ownerUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareLinkRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.ShareLinkWithContent, error) {
	args := m.Called(ctx, exec, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShareLinkWithContent), args.Error(1)
}

func (m *MockShareLinkRepository) TokenExists(ctx context.Context, exec sqlx.ExtContext, token string) (bool, error) {
	args := m.Called(ctx, exec, token)
	return args.Bool(0), args.Error(1)
}

type MockContentRepository struct{ mock.Mock }

func (m *MockContentRepository) Create(ctx context.Context, exec sqlx.ExtContext, content *model.Content) error {
	return m.Called(ctx, exec, content).Error(0)
}

func (m *MockContentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, contentUUID string) (*model.Content, error) {
	args := m.Called(ctx, exec, contentUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockContentRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Content, error) {
	args := m.Called(ctx, exec, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Content), args.Error(1)
}

func (m *MockContentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, contentUUID string, ownerUUID string) (string, error) {
	args := m.Called(ctx, exec, contentUUID, ownerUUID)
	return args.String(0), args.Error(1)
}

func (m *MockContentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockAccessLogRepository struct{ mock.Mock }

func (m *MockAccessLogRepository) Append(ctx context.Context, exec sqlx.ExtContext, entry *model.AccessLogEntry) error {
	return m.Called(ctx, exec, entry).Error(0)
}

func (m *MockAccessLogRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, limit int) ([]model.AccessLogEntry, error) {
	args := m.Called(ctx, exec, ownerUUID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccessLogEntry), args.Error(1)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) SetShareLink(ctx context.Context, link *model.ShareLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockCacheRepository) GetShareLink(ctx context.Context, token string) (*model.ShareLink, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareLink), args.Error(1)
}

func (m *MockCacheRepository) DeleteShareLink(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockCacheRepository) SetContent(ctx context.Context, content *model.Content) error {
	return m.Called(ctx, content).Error(0)
}

func (m *MockCacheRepository) GetContent(ctx context.Context, uuid string) (*model.Content, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockCacheRepository) DeleteContent(ctx context.Context, uuid string) error {
	return m.Called(ctx, uuid).Error(0)
}

type MockS3Storage struct{ mock.Mock }

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type fakeTx struct{}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return &sql.Row{}
}
func (f *fakeTx) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return &sqlx.Row{}
}
func (f *fakeTx) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return "", nil, nil
}
func (f *fakeTx) DriverName() string         { return "fake" }
func (f *fakeTx) Rebind(query string) string { return query }

// ===== Функция для создания сервиса с моками =====

func newTestShareLinkService() (*service.ShareLinkService, *MockShareLinkRepository, *MockContentRepository, *MockAccessLogRepository, *MockCacheRepository, *MockS3Storage) {
	linkRepo := new(MockShareLinkRepository)
	contentRepo := new(MockContentRepository)
	logRepo := new(MockAccessLogRepository)
	cacheRepo := new(MockCacheRepository)
	storage := new(MockS3Storage)

	svc := service.NewShareLinkService(linkRepo, contentRepo, logRepo, cacheRepo, storage)

	return svc, linkRepo, contentRepo, logRepo, cacheRepo, storage
}

func dbContext() context.Context {
	return context.WithValue(context.Background(), "db", &config.Database{})
}

// ===== Тесты CreateLink =====

func TestCreateLink_ExpiryBounds(t *testing.T) {
	svc, _, _, _, _, _ := newTestShareLinkService()
	ctx := dbContext()

	tests := []struct {
		name          string
		expiryMinutes int
	}{
		{name: "Zero minutes", expiryMinutes: 0},
		{name: "Negative minutes", expiryMinutes: -5},
		{name: "Above seven days", expiryMinutes: 10081},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, token, err := svc.CreateLink(ctx, "owner1", "content1", []string{"bob@co.com"}, tt.expiryMinutes, model.RequestMeta{})

			require.Error(t, err)
			invalid, ok := service.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, "expiryMinutes", invalid.Field)
			assert.Nil(t, link)
			assert.Equal(t, "", token)
		})
	}
}

func TestCreateLink_InvalidEmails(t *testing.T) {
	svc, _, _, _, _, _ := newTestShareLinkService()
	ctx := dbContext()

	link, _, err := svc.CreateLink(ctx, "owner1", "content1", []string{"bob@co.com", "not-an-email", "no space@x.com"}, 60, model.RequestMeta{})

	require.Error(t, err)
	invalid, ok := service.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, []string{"not-an-email", "no space@x.com"}, invalid.InvalidEmails)
	assert.Nil(t, link)
}

func TestCreateLink_EmptyAllowlist(t *testing.T) {
	svc, _, _, _, _, _ := newTestShareLinkService()
	ctx := dbContext()

	_, _, err := svc.CreateLink(ctx, "owner1", "content1", nil, 60, model.RequestMeta{})

	require.Error(t, err)
	invalid, ok := service.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "allowedEmails", invalid.Field)
}

func TestCreateLink_Success(t *testing.T) {
	svc, linkRepo, contentRepo, logRepo, _, _ := newTestShareLinkService()
	ctx := dbContext()

	content := &model.Content{UUID: "content1", OwnerUUID: "owner1", Title: "Лекция"}
	tx := &fakeTx{}

	contentRepo.On("BeginTX", ctx).Return(tx, func() error { return nil }, func() error { return nil }, nil)
	contentRepo.On("GetByUUID", ctx, tx, "content1").Return(content, nil)
	linkRepo.On("TokenExists", ctx, tx, mock.Anything).Return(false, nil)
	linkRepo.On("Create", ctx, tx, mock.Anything).Return(nil)
	logRepo.On("Append", ctx, mock.Anything, mock.MatchedBy(func(entry *model.AccessLogEntry) bool {
		return entry.EventType == model.EventLinkCreated
	})).Return(nil)

	// регистр и пробелы в email не значимы
	link, token, err := svc.CreateLink(ctx, "owner1", "content1", []string{" A@X.com ", "b@x.com"}, 60, model.RequestMeta{})

	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Len(t, token, 64)
	assert.Equal(t, token, link.ShareToken)
	// заголовок контента возвращается вместе со ссылкой
	assert.Equal(t, "Лекция", link.ContentTitle)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, []string(link.AllowedEmails))
	assert.Equal(t, 60, link.ExpiryMinutes)
	assert.True(t, link.IsActive)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), link.ExpiresAt, 5*time.Second)

	linkRepo.AssertExpectations(t)
	contentRepo.AssertExpectations(t)
	logRepo.AssertNumberOfCalls(t, "Append", 1)
}

func TestCreateLink_NotOwner(t *testing.T) {
	svc, _, contentRepo, _, _, _ := newTestShareLinkService()
	ctx := dbContext()

	content := &model.Content{UUID: "content1", OwnerUUID: "someone-else"}
	tx := &fakeTx{}

	contentRepo.On("BeginTX", ctx).Return(tx, func() error { return nil }, func() error { return nil }, nil)
	contentRepo.On("GetByUUID", ctx, tx, "content1").Return(content, nil)

	_, _, err := svc.CreateLink(ctx, "owner1", "content1", []string{"bob@co.com"}, 60, model.RequestMeta{})

	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateLink_ContentNotFound(t *testing.T) {
	svc, _, contentRepo, _, _, _ := newTestShareLinkService()
	ctx := dbContext()

	tx := &fakeTx{}
	contentRepo.On("BeginTX", ctx).Return(tx, func() error { return nil }, func() error { return nil }, nil)
	contentRepo.On("GetByUUID", ctx, tx, "content1").Return(nil, sql.ErrNoRows)

	_, _, err := svc.CreateLink(ctx, "owner1", "content1", []string{"bob@co.com"}, 60, model.RequestMeta{})

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// ===== Тесты AccessByToken =====

func activeLink(expiresIn time.Duration) *model.ShareLink {
	now := time.Now()
	return &model.ShareLink{
		UUID:          "link1",
		ContentUUID:   "content1",
		OwnerUUID:     "owner1",
		ShareToken:    "token1",
		AllowedEmails: []string{"bob@x.com"},
		ExpiresAt:     now.Add(expiresIn),
		ExpiryMinutes: int(expiresIn.Minutes()),
		IsActive:      true,
		CreatedAt:     now,
	}
}

func TestAccessByToken_Decisions(t *testing.T) {
	ctx := dbContext()

	tests := []struct {
		name        string
		link        *model.ShareLink
		email       string
		expectedErr error
		// вид события журнала, которым должен закончиться отказ
		expectedEvent string
		withContentID bool
	}{
		{
			name:          "Unknown token",
			link:          nil,
			email:         "bob@x.com",
			expectedErr:   service.ErrLinkNotFound,
			expectedEvent: model.EventAccessDenied,
			withContentID: false,
		},
		{
			name: "Deactivated link",
			link: func() *model.ShareLink {
				l := activeLink(time.Hour)
				l.IsActive = false
				return l
			}(),
			email:         "bob@x.com",
			expectedErr:   service.ErrLinkInactive,
			expectedEvent: model.EventAccessDenied,
			withContentID: true,
		},
		{
			name:          "Expired link",
			link:          activeLink(-time.Minute),
			email:         "bob@x.com",
			expectedErr:   service.ErrLinkExpired,
			expectedEvent: model.EventLinkExpired,
			withContentID: true,
		},
		{
			// истечение проверяется раньше allowlist: по просроченной ссылке
			// даже чужой email получает «истекла», а не «нет доступа»
			name:          "Expired wins over allowlist",
			link:          activeLink(-time.Minute),
			email:         "stranger@x.com",
			expectedErr:   service.ErrLinkExpired,
			expectedEvent: model.EventLinkExpired,
			withContentID: true,
		},
		{
			name:          "Email not in allowlist",
			link:          activeLink(time.Hour),
			email:         "stranger@x.com",
			expectedErr:   service.ErrEmailNotAllowed,
			expectedEvent: model.EventAccessDenied,
			withContentID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, linkRepo, _, logRepo, cacheRepo, _ := newTestShareLinkService()

			cacheRepo.On("GetShareLink", ctx, "token1").Return(nil, nil)
			linkRepo.On("GetByToken", ctx, mock.Anything, "token1").Return(tt.link, nil)
			if tt.link != nil {
				cacheRepo.On("SetShareLink", ctx, tt.link).Return(nil)
			}
			logRepo.On("Append", ctx, mock.Anything, mock.MatchedBy(func(entry *model.AccessLogEntry) bool {
				if entry.EventType != tt.expectedEvent {
					return false
				}
				return (entry.ContentUUID != nil) == tt.withContentID
			})).Return(nil)

			access, err := svc.AccessByToken(ctx, "token1", "user1", tt.email, false, model.RequestMeta{})

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, access)

			// ровно одно событие журнала на каждое решение авторизации
			logRepo.AssertNumberOfCalls(t, "Append", 1)
			logRepo.AssertExpectations(t)
		})
	}
}

func TestAccessByToken_Success(t *testing.T) {
	svc, linkRepo, contentRepo, logRepo, cacheRepo, storage := newTestShareLinkService()
	ctx := dbContext()

	link := activeLink(45 * time.Minute)
	content := &model.Content{UUID: "content1", OwnerUUID: "owner1", Title: "Лекция", StoragePath: "owner1/videos/1_demo.mp4"}

	cacheRepo.On("GetShareLink", ctx, "token1").Return(nil, nil)
	linkRepo.On("GetByToken", ctx, mock.Anything, "token1").Return(link, nil)
	cacheRepo.On("SetShareLink", ctx, link).Return(nil)
	contentRepo.On("GetByUUID", ctx, mock.Anything, "content1").Return(content, nil)
	// окно доставки всегда 120 секунд, сколько бы ни оставалось жить ссылке
	storage.On("GeneratePresignedGetURL", ctx, content.StoragePath, 120*time.Second).Return("http://signed-url", nil)
	logRepo.On("Append", ctx, mock.Anything, mock.MatchedBy(func(entry *model.AccessLogEntry) bool {
		return entry.EventType == model.EventAccessGranted
	})).Return(nil)

	access, err := svc.AccessByToken(ctx, "token1", "user1", "bob@x.com", false, model.RequestMeta{UserAgent: "ua", IPAddress: "1.2.3.4"})

	require.NoError(t, err)
	assert.Equal(t, "http://signed-url", access.Delivery.SignedURL)
	assert.Equal(t, 120, access.Delivery.ExpiresIn)
	assert.Equal(t, content, access.Delivery.Content)
	// остаток жизни ссылки округляется вниз до минут
	assert.Equal(t, 44, access.RemainingMinutes)

	logRepo.AssertNumberOfCalls(t, "Append", 1)
	storage.AssertExpectations(t)
}

func TestAccessByToken_EmailNormalization(t *testing.T) {
	svc, _, contentRepo, logRepo, cacheRepo, storage := newTestShareLinkService()
	ctx := dbContext()

	link := activeLink(time.Hour)
	content := &model.Content{UUID: "content1", StoragePath: "owner1/videos/1_demo.mp4"}

	cacheRepo.On("GetShareLink", ctx, "token1").Return(link, nil)
	contentRepo.On("GetByUUID", ctx, mock.Anything, "content1").Return(content, nil)
	storage.On("GeneratePresignedGetURL", ctx, content.StoragePath, 120*time.Second).Return("http://signed-url", nil)
	logRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	// " BOB@X.com " совпадает с "bob@x.com" из allowlist
	access, err := svc.AccessByToken(ctx, "token1", "user1", " BOB@X.com ", false, model.RequestMeta{})

	require.NoError(t, err)
	require.NotNil(t, access)
}

func TestAccessByToken_StoredAllowlistNormalized(t *testing.T) {
	svc, _, contentRepo, logRepo, cacheRepo, storage := newTestShareLinkService()
	ctx := dbContext()

	// запись allowlist, заведённая в БД напрямую, минуя сервис
	link := activeLink(time.Hour)
	link.AllowedEmails = []string{" Bob@X.com "}
	content := &model.Content{UUID: "content1", StoragePath: "owner1/videos/1_demo.mp4"}

	cacheRepo.On("GetShareLink", ctx, "token1").Return(link, nil)
	contentRepo.On("GetByUUID", ctx, mock.Anything, "content1").Return(content, nil)
	storage.On("GeneratePresignedGetURL", ctx, content.StoragePath, 120*time.Second).Return("http://signed-url", nil)
	logRepo.On("Append", ctx, mock.Anything, mock.MatchedBy(func(entry *model.AccessLogEntry) bool {
		return entry.EventType == model.EventAccessGranted
	})).Return(nil)

	access, err := svc.AccessByToken(ctx, "token1", "user1", "bob@x.com", false, model.RequestMeta{})

	require.NoError(t, err)
	require.NotNil(t, access)
}

func TestAccessByToken_Refresh(t *testing.T) {
	svc, _, contentRepo, logRepo, cacheRepo, storage := newTestShareLinkService()
	ctx := dbContext()

	link := activeLink(time.Hour)
	content := &model.Content{UUID: "content1", StoragePath: "owner1/videos/1_demo.mp4"}

	cacheRepo.On("GetShareLink", ctx, "token1").Return(link, nil)
	contentRepo.On("GetByUUID", ctx, mock.Anything, "content1").Return(content, nil)
	storage.On("GeneratePresignedGetURL", ctx, content.StoragePath, 120*time.Second).Return("http://signed-url-2", nil)
	logRepo.On("Append", ctx, mock.Anything, mock.MatchedBy(func(entry *model.AccessLogEntry) bool {
		return entry.EventType == model.EventURLRefreshed
	})).Return(nil)

	access, err := svc.AccessByToken(ctx, "token1", "user1", "bob@x.com", true, model.RequestMeta{})

	require.NoError(t, err)
	assert.Equal(t, "http://signed-url-2", access.Delivery.SignedURL)
	logRepo.AssertExpectations(t)
}

func TestAccessByToken_RefreshAfterDeactivation(t *testing.T) {
	svc, linkRepo, _, logRepo, cacheRepo, _ := newTestShareLinkService()
	ctx := dbContext()

	// ссылку деактивировали посреди сессии просмотра: кэш уже инвалидирован,
	// из БД приходит неактивная ссылка
	link := activeLink(time.Hour)
	link.IsActive = false

	cacheRepo.On("GetShareLink", ctx, "token1").Return(nil, nil)
	linkRepo.On("GetByToken", ctx, mock.Anything, "token1").Return(link, nil)
	cacheRepo.On("SetShareLink", ctx, link).Return(nil)
	logRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	access, err := svc.AccessByToken(ctx, "token1", "user1", "bob@x.com", true, model.RequestMeta{})

	assert.ErrorIs(t, err, service.ErrLinkInactive)
	assert.Nil(t, access)
}

func TestAccessByToken_StorageFailure(t *testing.T) {
	svc, _, contentRepo, logRepo, cacheRepo, storage := newTestShareLinkService()
	ctx := dbContext()

	link := activeLink(time.Hour)
	content := &model.Content{UUID: "content1", StoragePath: "owner1/videos/1_demo.mp4"}

	cacheRepo.On("GetShareLink", ctx, "token1").Return(link, nil)
	contentRepo.On("GetByUUID", ctx, mock.Anything, "content1").Return(content, nil)
	storage.On("GeneratePresignedGetURL", ctx, content.StoragePath, 120*time.Second).Return("", errors.New("s3 down"))

	access, err := svc.AccessByToken(ctx, "token1", "user1", "bob@x.com", false, model.RequestMeta{})

	assert.ErrorIs(t, err, service.ErrDeliveryUnavailable)
	assert.Nil(t, access)
	// сбой хранилища — не решение авторизации, событие не пишется
	logRepo.AssertNumberOfCalls(t, "Append", 0)
}

func TestAccessByToken_AuditFailureDoesNotBlock(t *testing.T) {
	svc, _, contentRepo, logRepo, cacheRepo, storage := newTestShareLinkService()
	ctx := dbContext()

	link := activeLink(time.Hour)
	content := &model.Content{UUID: "content1", StoragePath: "owner1/videos/1_demo.mp4"}

	cacheRepo.On("GetShareLink", ctx, "token1").Return(link, nil)
	contentRepo.On("GetByUUID", ctx, mock.Anything, "content1").Return(content, nil)
	storage.On("GeneratePresignedGetURL", ctx, content.StoragePath, 120*time.Second).Return("http://signed-url", nil)
	logRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(errors.New("журнал недоступен"))

	access, err := svc.AccessByToken(ctx, "token1", "user1", "bob@x.com", false, model.RequestMeta{})

	require.NoError(t, err)
	require.NotNil(t, access)
}

// ===== Тесты Deactivate =====

func TestDeactivate_AllCases(t *testing.T) {
	ctx := dbContext()
	link := activeLink(time.Hour)

	tests := []struct {
		name        string
		setupMocks  func(linkRepo *MockShareLinkRepository, cacheRepo *MockCacheRepository)
		ownerUUID   string
		expectedErr error
	}{
		{
			name: "Success",
			setupMocks: func(linkRepo *MockShareLinkRepository, cacheRepo *MockCacheRepository) {
				linkRepo.On("GetByUUID", ctx, mock.Anything, "link1").Return(link, nil)
				linkRepo.On("Deactivate", ctx, mock.Anything, "link1", "owner1").Return(true, nil)
				cacheRepo.On("DeleteShareLink", ctx, "token1").Return(nil)
			},
			ownerUUID: "owner1",
		},
		{
			name: "Not owner",
			setupMocks: func(linkRepo *MockShareLinkRepository, cacheRepo *MockCacheRepository) {
				linkRepo.On("GetByUUID", ctx, mock.Anything, "link1").Return(link, nil)
			},
			ownerUUID:   "other",
			expectedErr: service.ErrForbidden,
		},
		{
			name: "Link not found",
			setupMocks: func(linkRepo *MockShareLinkRepository, cacheRepo *MockCacheRepository) {
				linkRepo.On("GetByUUID", ctx, mock.Anything, "link1").Return(nil, sql.ErrNoRows)
			},
			ownerUUID:   "owner1",
			expectedErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, linkRepo, _, _, cacheRepo, _ := newTestShareLinkService()
			tt.setupMocks(linkRepo, cacheRepo)

			err := svc.Deactivate(ctx, tt.ownerUUID, "link1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			linkRepo.AssertExpectations(t)
			cacheRepo.AssertExpectations(t)
		})
	}
}
