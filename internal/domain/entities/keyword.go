package entities

import (
	"time"

	"github.com/google/uuid"
)

// Keyword is a curated topic keyword linked to meetings through their results
type Keyword struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Keyword
func (Keyword) TableName() string {
	return "keywords"
}

// MeetingResultKeyword joins meeting results to curated keywords
type MeetingResultKeyword struct {
	MeetingID uuid.UUID `gorm:"type:uuid;primaryKey" json:"meeting_id"`
	KeywordID uuid.UUID `gorm:"type:uuid;primaryKey" json:"keyword_id"`
}

// TableName specifies the table name for MeetingResultKeyword
func (MeetingResultKeyword) TableName() string {
	return "meeting_result_keywords"
}
