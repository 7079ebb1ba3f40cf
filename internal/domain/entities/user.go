package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserJob is the persona tag of a user. It only biases search ranking and
// never restricts which meetings a user can see.
type UserJob string

const (
	JobNone                  UserJob = "NONE"
	JobProjectManager        UserJob = "PROJECT_MANAGER"
	JobFrontendDeveloper     UserJob = "FRONTEND_DEVELOPER"
	JobBackendDeveloper      UserJob = "BACKEND_DEVELOPER"
	JobDatabaseAdministrator UserJob = "DATABASE_ADMINISTRATOR"
	JobSecurityDeveloper     UserJob = "SECURITY_DEVELOPER"
)

// IsValid checks if the job tag is valid
func (j UserJob) IsValid() bool {
	switch j {
	case JobNone, JobProjectManager, JobFrontendDeveloper, JobBackendDeveloper,
		JobDatabaseAdministrator, JobSecurityDeveloper:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Job       UserJob   `gorm:"type:varchar(50);not null;default:'NONE'" json:"job"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with default values
func NewUser(name string) *User {
	return &User{
		ID:   uuid.New(),
		Name: name,
		Job:  JobNone,
	}
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrInvalidName
	}
	if !u.Job.IsValid() {
		return ErrInvalidJob
	}
	return nil
}
