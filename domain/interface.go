package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	// DefaultQueryLimit applies when a caller does not bound a query.
	DefaultQueryLimit = 50
	// MaxQueryLimit caps a single page to bound response size.
	MaxQueryLimit = 100
)

type QueryAuditLogOptions struct {
	LogTypes       []LogType
	Levels         []Level
	UserIDs        []bson.ObjectID
	Actions        []string
	CorrelationIDs []string
	CreatedGTE     int64
	CreatedLTE     int64
	// Search matches message case-insensitively. With SearchActorFields set
	// (administrative views) it also matches action, user_name and
	// user_email.
	Search            string
	SearchActorFields bool
	Limit             int64
	Offset            int64
	Result            []*AuditLog
}

type QueryUserOptions struct {
	IDs    []bson.ObjectID
	Emails []string
	Result []*User
}

type QuerySettingOptions struct {
	Categories []string
	Keys       []string
	Result     []*Setting
}

type Repository interface {
	CreateAuditLog(ctx context.Context, entry *AuditLog) error
	QueryAuditLogs(ctx context.Context, opt *QueryAuditLogOptions) error
	// PurgeExpiredAuditLogs removes non-sensitive entries whose advisory
	// retention horizon has passed. It is an out-of-band compliance
	// operation, not part of the audit trail's normal contract.
	PurgeExpiredAuditLogs(ctx context.Context, now int64) (int64, error)

	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	QueryUsers(ctx context.Context, opt *QueryUserOptions) error

	UpsertSetting(ctx context.Context, setting *Setting) error
	QuerySettings(ctx context.Context, opt *QuerySettingOptions) error
}

// Service is the application surface. The Log* methods are the domain
// emitters: the only way any collaborator records an audit entry. They are
// fire-and-forget, returning the assigned entry id or an empty string, and
// never an error.
type Service interface {
	// auth
	Login(ctx context.Context, email, password string, meta *RequestMeta) (token string, err error)
	Logout(ctx context.Context, claims *Claims, meta *RequestMeta) error
	ChangePassword(ctx context.Context, claims *Claims, oldPassword, newPassword string) error
	CreateAdminUserIfNotExists(ctx context.Context, email, password string) error
	VerifyJWTToken(ctx context.Context, tokenString string, requiredRole string) (Claims, error)

	// users
	CreateUser(ctx context.Context, operator *Claims, user *User, meta *RequestMeta) error
	QueryUsers(ctx context.Context, opt *QueryUserOptions) error

	// settings
	UpdateSetting(ctx context.Context, operator *Claims, category, key, value string, meta *RequestMeta) error
	QuerySettings(ctx context.Context, opt *QuerySettingOptions) error

	// audit emitters
	LogUserActivity(ctx context.Context, event UserActivityEvent) string
	LogSystemEvent(ctx context.Context, event SystemEvent) string
	LogAuthEvent(ctx context.Context, event AuthEvent) string
	LogEmailEvent(ctx context.Context, event EmailEvent) string
	LogFileOperation(ctx context.Context, event FileOperationEvent) string
	LogSettingsUpdate(ctx context.Context, event SettingsUpdateEvent) string
	LogSecurityEvent(ctx context.Context, event SecurityEvent) string

	// audit read path
	QueryAuditLogs(ctx context.Context, opt *QueryAuditLogOptions) error
	QueryEmailLogs(ctx context.Context, opt *QueryAuditLogOptions) ([]*EmailLog, error)
	PurgeExpiredAuditLogs(ctx context.Context) (int64, error)

	// writer lifecycle
	StartAuditWriter(ctx context.Context) error
	StopAuditWriter(ctx context.Context) error
}
