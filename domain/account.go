package domain

type UserStatus int8

const (
	UserStatusActive             UserStatus = 1
	UserStatusInactive           UserStatus = 2
	UserStatusWaitChangePassword UserStatus = 3
	UserStatusBanned             UserStatus = 4
)

const (
	AdminRole     = "admin"
	InspectorRole = "inspector"
	ViewerRole    = "viewer"
)

// User is the identity projection the audit subsystem enriches entries from
// and joins display fields against on reads.
type User struct {
	BaseEntity
	Email    string            `bson:"email,omitempty"`
	Name     string            `bson:"name,omitempty"`
	Role     string            `bson:"role,omitempty"`
	Password EncryptedPassword `bson:"password,omitempty"`
	Status   UserStatus        `bson:"status,omitempty"`
}

// Setting is one branding or configuration value, addressed by category and
// key. Updates are recorded through the settings-update audit emitter.
type Setting struct {
	BaseEntity
	Category string `bson:"category,omitempty"`
	Key      string `bson:"key,omitempty"`
	Value    string `bson:"value,omitempty"`
}
