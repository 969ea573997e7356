package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Team is a named group of members
type Team struct {
	ID        string                      `json:"_id,omitempty" bson:"_id,omitempty" gorm:"column:id;type:uuid;primaryKey"`
	Name      string                      `json:"name" bson:"name" gorm:"column:name;type:varchar(255);not null"`
	Members   datatypes.JSONSlice[Member] `json:"members" bson:"members" gorm:"column:members;type:jsonb;not null"`
	CreatedAt time.Time                   `json:"createdAt" bson:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time                   `json:"updatedAt" bson:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Member is one person in a team
type Member struct {
	Name  string `json:"name" bson:"name"`
	Role  string `json:"role" bson:"role"`
	Email string `json:"email" bson:"email"`
}

// TeamViolation identifies the first rule a team record breaks
type TeamViolation int

const (
	TeamViolationNone TeamViolation = iota
	TeamViolationMissing
	TeamViolationName
	TeamViolationNoMembers
	TeamViolationMemberName
	TeamViolationMemberRole
	TeamViolationMemberEmail
	TeamViolationMemberEmailFormat
)

// TeamValidationError is returned by ValidateTeam
type TeamValidationError struct {
	Violation   TeamViolation
	MemberIndex int
	MemberName  string
}

func (e *TeamValidationError) Error() string {
	switch e.Violation {
	case TeamViolationMissing:
		return "Team object required"
	case TeamViolationName:
		return "Team Name is required"
	case TeamViolationNoMembers:
		return "At least one member is required"
	case TeamViolationMemberName:
		return "Member Name is required"
	case TeamViolationMemberRole:
		return "Member Role is required"
	case TeamViolationMemberEmail:
		return "Member Email is required"
	case TeamViolationMemberEmailFormat:
		return fmt.Sprintf("Invalid Email format for member: %s", e.MemberName)
	default:
		return "invalid team"
	}
}

var memberEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateTeam checks a team record before it is persisted and reports the first violation.
// Checks run in order: team, name, members, then each member's name, role and email.
func ValidateTeam(team *Team) error {
	if team == nil {
		return &TeamValidationError{Violation: TeamViolationMissing, MemberIndex: -1}
	}
	if strings.TrimSpace(team.Name) == "" {
		return &TeamValidationError{Violation: TeamViolationName, MemberIndex: -1}
	}
	if len(team.Members) == 0 {
		return &TeamValidationError{Violation: TeamViolationNoMembers, MemberIndex: -1}
	}

	for i, m := range team.Members {
		violation := TeamViolationNone
		switch {
		case strings.TrimSpace(m.Name) == "":
			violation = TeamViolationMemberName
		case strings.TrimSpace(m.Role) == "":
			violation = TeamViolationMemberRole
		case strings.TrimSpace(m.Email) == "":
			violation = TeamViolationMemberEmail
		case !memberEmailPattern.MatchString(m.Email):
			violation = TeamViolationMemberEmailFormat
		}
		if violation != TeamViolationNone {
			return &TeamValidationError{Violation: violation, MemberIndex: i, MemberName: m.Name}
		}
	}

	return nil
}
