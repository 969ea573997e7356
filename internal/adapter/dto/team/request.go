package team

import (
	"encoding/json"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// TeamRequest is the body of team create and update requests.
// Validation happens in entities.ValidateTeam so the messages follow the rule order.
type TeamRequest struct {
	Name    string          `json:"name"`
	Members []MemberRequest `json:"members"`
}

// MemberRequest is one team member
type MemberRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// UnmarshalJSON decodes leniently: values of the wrong JSON type are treated as absent,
// so a non-string name reads as a missing name and non-array members as no members.
func (r *TeamRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    any `json:"name"`
		Members any `json:"members"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Name = text(raw.Name)
	r.Members = nil
	items, _ := raw.Members.([]any)
	for _, item := range items {
		m, _ := item.(map[string]any)
		r.Members = append(r.Members, MemberRequest{
			Name:  text(m["name"]),
			Role:  text(m["role"]),
			Email: text(m["email"]),
		})
	}
	return nil
}

func text(v any) string {
	s, _ := v.(string)
	return s
}

// ToEntity converts the request to a team record. A nil request stays nil.
func (r *TeamRequest) ToEntity() *entities.Team {
	if r == nil {
		return nil
	}
	members := make([]entities.Member, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, entities.Member{Name: m.Name, Role: m.Role, Email: m.Email})
	}
	return &entities.Team{Name: r.Name, Members: members}
}
