package domain

// RequestMeta is the network context derived from the triggering HTTP
// request, if any. It is captured synchronously at emit time so the request
// object never outlives its handler.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Method    string
	Path      string
	Headers   map[string]string
}

// ResourceRef identifies the object an event concerns.
type ResourceRef struct {
	Type string
	ID   string
	Name string
}

// UserActivityEvent is the input of the user-activity emitter.
type UserActivityEvent struct {
	UserID   string
	Action   string
	Message  string
	Resource ResourceRef
	Details  Details
	Level    Level // optional, defaults to INFO
	Meta     *RequestMeta
}

// SystemEvent is the input of the system emitter. System entries never carry
// actor or network fields.
type SystemEvent struct {
	Level   Level
	Message string
	Module  string
	Details Details
}

// AuthEvent covers login, logout and failed-login events.
type AuthEvent struct {
	Action    string
	Message   string
	UserID    string // optional, empty for failed logins of unknown users
	SessionID string
	Details   Details
	Level     Level // optional, failures default to WARNING
	Meta      *RequestMeta
}

// EmailEvent records an outbound email attempt. When no explicit level is
// given it derives from Status: "failed" maps to ERROR, everything else to
// INFO.
type EmailEvent struct {
	Action       string
	Message      string
	Recipient    string
	Subject      string
	Status       string
	ErrorMessage string
	Level        Level
	Meta         *RequestMeta
}

// FileOperationEvent records an upload, download or delete of a stored file.
type FileOperationEvent struct {
	UserID   string
	Action   string
	FileName string
	FileSize int64
	FileType string
	FilePath string
	Meta     *RequestMeta
}

// SettingsUpdateEvent is the settings-change specialization of user
// activity. The emitter derives resource id "<category>.<key>" and stores
// the old/new pair in the details payload.
type SettingsUpdateEvent struct {
	UserID    string
	UserEmail string
	Category  string
	Key       string
	OldValue  string
	NewValue  string
	Meta      *RequestMeta
}

// SecurityEvent records a security-relevant occurrence. Entries default to
// sensitive.
type SecurityEvent struct {
	Level   Level
	Action  string
	Message string
	UserID  string // optional
	Details Details
	Meta    *RequestMeta
}

// EmailLog is the reshaped projection of email audit entries returned by the
// email-log convenience view.
type EmailLog struct {
	ID           string
	Recipient    string
	Subject      string
	Status       string
	ErrorMessage string
	Level        Level
	Message      string
	SentAt       int64
}
