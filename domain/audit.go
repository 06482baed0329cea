package domain

import (
	"context"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// LogType classifies an audit entry. The set is closed; entries carrying an
// unknown log type are rejected before they reach storage.
type LogType string

const (
	LogTypeSystem        LogType = "system"
	LogTypeUserActivity  LogType = "user_activity"
	LogTypeEmail         LogType = "email"
	LogTypeAuth          LogType = "auth"
	LogTypeSecurity      LogType = "security"
	LogTypeAPI           LogType = "api"
	LogTypeFileOperation LogType = "file_operation"
)

func (t LogType) Valid() bool {
	switch t {
	case LogTypeSystem, LogTypeUserActivity, LogTypeEmail, LogTypeAuth,
		LogTypeSecurity, LogTypeAPI, LogTypeFileOperation:
		return true
	}
	return false
}

// Level is the severity of an audit entry, totally ordered by Severity.
type Level string

const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// Severity returns the rank of the level, -1 for unknown levels.
func (l Level) Severity() int {
	switch l {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarning:
		return 2
	case LevelError:
		return 3
	case LevelCritical:
		return 4
	}
	return -1
}

func (l Level) Valid() bool {
	return l.Severity() >= 0
}

// Well-known action verbs. The action field stays a free string so new verbs
// can be introduced without a schema change, but callers should prefer these
// constants to avoid typos.
const (
	ActionLogin          = "LOGIN"
	ActionLoginFailed    = "LOGIN_FAILED"
	ActionLogout         = "LOGOUT"
	ActionPasswordChange = "PASSWORD_CHANGE"
	ActionUserCreate     = "USER_CREATE"
	ActionUserUpdate     = "USER_UPDATE"
	ActionSettingsUpdate = "SETTINGS_UPDATE"
	ActionFileUpload     = "FILE_UPLOAD"
	ActionFileDownload   = "FILE_DOWNLOAD"
	ActionFileDelete     = "FILE_DELETE"
	ActionEmailSend      = "EMAIL_SEND"
	ActionRetentionSweep = "RETENTION_SWEEP"
)

// AuditLog is one immutable record of something that happened. Entries are
// created through the service emitters, enriched once, persisted once and
// never mutated afterwards.
type AuditLog struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	CreatedTime int64         `bson:"created_time,omitempty"`

	LogType LogType `bson:"log_type"`
	Level   Level   `bson:"level"`
	Action  string  `bson:"action,omitempty"`
	Message string  `bson:"message,omitempty"`

	// Actor fields, absent for system-generated events.
	UserID    bson.ObjectID `bson:"user_id,omitempty"`
	UserEmail string        `bson:"user_email,omitempty"`
	UserName  string        `bson:"user_name,omitempty"`
	UserRole  string        `bson:"user_role,omitempty"`
	SessionID string        `bson:"session_id,omitempty"`

	// Network fields, populated only when a request context is available.
	IPAddress      string            `bson:"ip_address,omitempty"`
	UserAgent      string            `bson:"user_agent,omitempty"`
	RequestMethod  string            `bson:"request_method,omitempty"`
	RequestPath    string            `bson:"request_path,omitempty"`
	RequestHeaders map[string]string `bson:"request_headers,omitempty"`

	// Resource fields identify the object the event concerns.
	ResourceType string `bson:"resource_type,omitempty"`
	ResourceID   string `bson:"resource_id,omitempty"`
	ResourceName string `bson:"resource_name,omitempty"`

	Details Details `bson:"details,omitempty"`

	Module        string `bson:"module,omitempty"`
	CorrelationID string `bson:"correlation_id,omitempty"`
	TenantID      string `bson:"tenant_id,omitempty"`

	IsSensitive       bool `bson:"is_sensitive,omitempty"`
	IsSystemGenerated bool `bson:"is_system_generated,omitempty"`
	RetentionDays     int  `bson:"retention_days,omitempty"`
}

// NewCorrelationID returns an opaque identifier used to link causally
// related audit entries, e.g. all events produced by one HTTP request.
func NewCorrelationID() string {
	return xid.New().String()
}

type correlationIDCtxKey struct{}

func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDCtxKey{}, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDCtxKey{}).(string)
	return id
}
