package service_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/cyltest/api/config"
	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/pkg/logger"
	"github.com/cyltest/api/service"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func init() {
	logger.InitLogger()
}

// newTestService builds a service with a synchronous audit writer so every
// emit persists before the emitter returns.
func newTestService(t *testing.T, repo domain.Repository) domain.Service {
	t.Helper()
	svc, err := service.NewService(service.Params{
		Repo: repo,
		AuditConfig: config.AuditConfig{
			QueueSize:            0,
			DefaultRetentionDays: 365,
		},
	})
	require.NoError(t, err, "NewService should not fail")
	return svc
}

func TestRequestMetadataHeaderPrecedence(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/users", nil)
	r.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	r.Header.Set("X-Real-IP", "3.3.3.3")

	meta := service.RequestMetadata(r)
	require.Equal(t, "1.1.1.1", meta.IPAddress, "first hop of x-forwarded-for wins")

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("CF-Connecting-IP", "4.4.4.4")
	meta = service.RequestMetadata(r)
	require.Equal(t, "4.4.4.4", meta.IPAddress, "lower-priority header used when higher ones are absent")

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "unknown")
	r.Header.Set("X-Real-IP", "5.5.5.5")
	meta = service.RequestMetadata(r)
	require.Equal(t, "5.5.5.5", meta.IPAddress, "'unknown' values are skipped")

	meta = service.RequestMetadata(httptest.NewRequest("GET", "/", nil))
	require.Empty(t, meta.IPAddress, "no proxy headers yields empty address")
}

func TestRequestMetadataDropsSensitiveHeaders(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	r.Header.Set("Authorization", "Bearer secret")
	r.Header.Set("Cookie", "session=abc")
	r.Header.Set("X-Api-Key", "key")
	r.Header.Set("Accept", "application/json")

	meta := service.RequestMetadata(r)
	require.NotContains(t, meta.Headers, "authorization")
	require.NotContains(t, meta.Headers, "cookie")
	require.NotContains(t, meta.Headers, "x-api-key")
	require.Equal(t, "application/json", meta.Headers["accept"])
	require.Equal(t, "POST", meta.Method)
	require.Equal(t, "/api/v1/auth/login", meta.Path)
}

func TestLogAuthEventFailureDefaultsToWarning(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	id := svc.LogAuthEvent(context.Background(), domain.AuthEvent{
		Action:  domain.ActionLoginFailed,
		Message: "Login failed for x@y.z",
	})
	require.NotEmpty(t, id, "successful write returns the entry id")
	require.Equal(t, domain.LogTypeAuth, captured.LogType)
	require.Equal(t, domain.LevelWarning, captured.Level, "failed logins default to WARNING")
	require.Equal(t, id, captured.ID.Hex())
	require.NotZero(t, captured.CreatedTime)
}

func TestLogEmailEventSeverityFromStatus(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var entries []*domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { entries = append(entries, entry) }).
		Return(nil).Times(2)

	svc.LogEmailEvent(context.Background(), domain.EmailEvent{
		Recipient: "a@b.c", Subject: "Certificate ready", Status: "sent",
	})
	svc.LogEmailEvent(context.Background(), domain.EmailEvent{
		Recipient: "a@b.c", Subject: "Certificate ready", Status: "failed", ErrorMessage: "smtp timeout",
	})

	require.Len(t, entries, 2)
	require.Equal(t, domain.LevelInfo, entries[0].Level, "sent maps to INFO")
	require.Equal(t, domain.LevelError, entries[1].Level, "failed maps to ERROR")
	require.Equal(t, domain.LogTypeEmail, entries[0].LogType)
	require.Equal(t, domain.ActionEmailSend, entries[0].Action)
	require.Equal(t, "a@b.c", entries[0].Details["recipient"])
	require.Equal(t, "smtp timeout", entries[1].Details["error"])
}

func TestEmitterSwallowsStorageFailure(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Return(errors.New("mongo down")).Once()

	id := svc.LogSystemEvent(context.Background(), domain.SystemEvent{
		Message: "startup", Module: "app",
	})
	require.Empty(t, id, "a failed write surfaces only as an empty id")
}

func TestEmitterCoercesUnknownLevel(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	svc.LogUserActivity(context.Background(), domain.UserActivityEvent{
		Action:  domain.ActionUserUpdate,
		Message: "update",
		Level:   domain.Level("VERBOSE"),
	})
	require.Equal(t, domain.LevelInfo, captured.Level, "unknown level coerces to INFO")
}

func TestLogSettingsUpdateShape(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	svc.LogSettingsUpdate(context.Background(), domain.SettingsUpdateEvent{
		Category:  "email",
		Key:       "smtp_port",
		OldValue:  "25",
		NewValue:  "587",
		UserEmail: "admin@cyltest.local",
	})

	require.Equal(t, domain.LogTypeUserActivity, captured.LogType, "settings updates are user activity")
	require.Equal(t, domain.ActionSettingsUpdate, captured.Action)
	require.Equal(t, "setting", captured.ResourceType)
	require.Equal(t, "email.smtp_port", captured.ResourceID)
	require.Equal(t, "25", captured.Details["old_value"])
	require.Equal(t, "587", captured.Details["new_value"])
	require.Equal(t, 365, captured.RetentionDays, "default retention stamped on entries")
}

func TestLogSecurityEventMarkedSensitive(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	svc.LogSecurityEvent(context.Background(), domain.SecurityEvent{
		Action:  "ACCESS_DENIED",
		Message: "role check failed",
	})
	require.True(t, captured.IsSensitive, "security entries default to sensitive")
	require.Equal(t, domain.LevelInfo, captured.Level)
}

func TestLogSystemEventHasNoActor(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	svc.LogSystemEvent(context.Background(), domain.SystemEvent{
		Message: "Retention sweep removed 3 expired audit entries",
		Module:  "audit",
	})
	require.True(t, captured.IsSystemGenerated)
	require.True(t, captured.UserID.IsZero(), "system entries carry no actor")
	require.Empty(t, captured.IPAddress, "system entries carry no network fields")
}

func TestCorrelationIDInheritedFromContext(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var entries []*domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { entries = append(entries, entry) }).
		Return(nil).Times(2)

	corrID := domain.NewCorrelationID()
	ctx := domain.ContextWithCorrelationID(context.Background(), corrID)

	svc.LogUserActivity(ctx, domain.UserActivityEvent{Action: domain.ActionUserUpdate, Message: "step one"})
	svc.LogFileOperation(ctx, domain.FileOperationEvent{Action: domain.ActionFileUpload, FileName: "cert.pdf"})

	require.Len(t, entries, 2)
	require.Equal(t, corrID, entries[0].CorrelationID)
	require.Equal(t, corrID, entries[1].CorrelationID, "entries from one request share the correlation id")
}

func TestLogFileOperationMessage(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	svc.LogFileOperation(context.Background(), domain.FileOperationEvent{
		Action:   domain.ActionFileUpload,
		FileName: "cert-1042.pdf",
		FileSize: 2048,
		FilePath: "certs/cert-1042.pdf",
	})
	require.Equal(t, "File FILE_UPLOAD: cert-1042.pdf", captured.Message)
	require.Equal(t, "file", captured.ResourceType)
	require.Equal(t, "certs/cert-1042.pdf", captured.ResourceID)
	require.Equal(t, "2048", captured.Details["file_size"])
}

func TestIdentityEnrichmentUsesCache(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	uid := bson.NewObjectID()
	user := &domain.User{
		BaseEntity: domain.BaseEntity{ID: uid},
		Email:      "inspector@cyltest.local",
		Name:       "Inspector",
		Role:       domain.InspectorRole,
	}
	// One lookup serves both emits: the second resolves from the cache.
	repo.EXPECT().QueryUsers(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, opt *domain.QueryUserOptions) { opt.Result = []*domain.User{user} }).
		Return(nil).Once()

	var entries []*domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { entries = append(entries, entry) }).
		Return(nil).Times(2)

	event := domain.UserActivityEvent{
		UserID:  uid.Hex(),
		Action:  domain.ActionUserUpdate,
		Message: "update",
	}
	svc.LogUserActivity(context.Background(), event)
	svc.LogUserActivity(context.Background(), event)

	require.Len(t, entries, 2)
	for _, entry := range entries {
		require.Equal(t, "inspector@cyltest.local", entry.UserEmail)
		require.Equal(t, "Inspector", entry.UserName)
		require.Equal(t, domain.InspectorRole, entry.UserRole)
	}
}

func TestIdentityLookupFailureDoesNotBlockWrite(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	repo.EXPECT().QueryUsers(mock.Anything, mock.Anything).
		Return(errors.New("mongo down")).Once()

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	id := svc.LogUserActivity(context.Background(), domain.UserActivityEvent{
		UserID:  bson.NewObjectID().Hex(),
		Action:  domain.ActionUserUpdate,
		Message: "update",
	})
	require.NotEmpty(t, id, "write proceeds without the display fields")
	require.Empty(t, captured.UserEmail)
}

func TestQueryAuditLogsNormalizesPagination(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	repo.EXPECT().QueryAuditLogs(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, opt *domain.QueryAuditLogOptions) {
			require.EqualValues(t, domain.DefaultQueryLimit, opt.Limit, "zero limit defaults")
		}).Return(nil).Once()
	err := svc.QueryAuditLogs(context.Background(), &domain.QueryAuditLogOptions{})
	require.NoError(t, err)

	repo.EXPECT().QueryAuditLogs(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, opt *domain.QueryAuditLogOptions) {
			require.EqualValues(t, domain.MaxQueryLimit, opt.Limit, "oversized limit caps")
		}).Return(nil).Once()
	err = svc.QueryAuditLogs(context.Background(), &domain.QueryAuditLogOptions{Limit: 5000})
	require.NoError(t, err)

	err = svc.QueryAuditLogs(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrNilQueryInput)
}

func TestQueryAuditLogsSwallowsStorageFailure(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	repo.EXPECT().QueryAuditLogs(mock.Anything, mock.Anything).
		Return(errors.New("mongo down")).Once()

	opt := &domain.QueryAuditLogOptions{}
	err := svc.QueryAuditLogs(context.Background(), opt)
	require.NoError(t, err, "query failures degrade to an empty page")
	require.NotNil(t, opt.Result)
	require.Empty(t, opt.Result)
}

func TestQueryEmailLogsReshapesDetails(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	entryID := bson.NewObjectID()
	repo.EXPECT().QueryAuditLogs(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, opt *domain.QueryAuditLogOptions) {
			require.Equal(t, []domain.LogType{domain.LogTypeEmail}, opt.LogTypes, "view is scoped to email entries")
			opt.Result = []*domain.AuditLog{{
				ID:          entryID,
				CreatedTime: 1700000000000,
				LogType:     domain.LogTypeEmail,
				Level:       domain.LevelError,
				Message:     "Email send failed",
				Details: domain.Details{
					"recipient": "a@b.c",
					"subject":   "Certificate ready",
					"status":    "failed",
					"error":     "smtp timeout",
				},
			}}
		}).Return(nil).Once()

	logs, err := svc.QueryEmailLogs(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, entryID.Hex(), logs[0].ID)
	require.Equal(t, "a@b.c", logs[0].Recipient)
	require.Equal(t, "failed", logs[0].Status)
	require.Equal(t, "smtp timeout", logs[0].ErrorMessage)
	require.EqualValues(t, 1700000000000, logs[0].SentAt)
}

func TestPurgeExpiredAuditLogsEmitsSystemEvent(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc := newTestService(t, repo)

	repo.EXPECT().PurgeExpiredAuditLogs(mock.Anything, mock.Anything).
		Return(int64(7), nil).Once()

	var captured *domain.AuditLog
	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.AuditLog) { captured = entry }).
		Return(nil).Once()

	deleted, err := svc.PurgeExpiredAuditLogs(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 7, deleted)
	require.Equal(t, domain.LogTypeSystem, captured.LogType)
	require.Equal(t, "audit", captured.Module)
	require.Equal(t, domain.ActionRetentionSweep, captured.Details["action"])
}

func TestWriterAcceptsEntriesBeforeStart(t *testing.T) {
	repo := domain.NewMockRepository(t)
	svc, err := service.NewService(service.Params{
		Repo: repo,
		AuditConfig: config.AuditConfig{
			QueueSize:            4,
			DefaultRetentionDays: 365,
		},
	})
	require.NoError(t, err, "NewService should not fail")

	// The queue exists from construction, so an emit racing the lifecycle
	// hook is buffered rather than persisted synchronously or dropped.
	id := svc.LogSystemEvent(context.Background(), domain.SystemEvent{
		Message: "service starting",
		Module:  "health",
	})
	require.NotEmpty(t, id, "emit before writer start is accepted")

	repo.EXPECT().CreateAuditLog(mock.Anything, mock.Anything).
		Return(nil).Once()

	require.NoError(t, svc.StartAuditWriter(context.Background()))
	// Stop drains everything accepted so far, including the pre-start entry.
	require.NoError(t, svc.StopAuditWriter(context.Background()))
}
