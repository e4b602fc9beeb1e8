package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleApplicant = "applicant"
	RoleMentor    = "mentor"
	RoleAdmin     = "admin"
)

// User is the profile of an applicant or mentor. EvaluationSummary is a cache
// of the user's evaluations maintained by the aggregator; NULL means the user
// has not been evaluated yet.
type User struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(255);not null" json:"name"`
	Email             string         `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Phone             string         `gorm:"type:varchar(50)" json:"phone"`
	Role              string         `gorm:"type:varchar(50)" json:"role"`
	EvaluationSummary datatypes.JSON `gorm:"type:jsonb" json:"evaluation_summary,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Summary decodes the cached summary. It returns nil when none is stored.
func (u *User) Summary() (*EvaluationSummary, error) {
	if len(u.EvaluationSummary) == 0 || string(u.EvaluationSummary) == "null" {
		return nil, nil
	}
	var s EvaluationSummary
	if err := json.Unmarshal(u.EvaluationSummary, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
