package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// reserved keys are kept out of the attribute bag
var profileReservedKeys = []string{"_id", "email", "createdAt", "updatedAt"}

// Profile is a free-form attribute bag keyed by email.
// On the wire the attributes are flattened next to email.
type Profile struct {
	ID         string            `gorm:"column:id;type:uuid;primaryKey"`
	Email      string            `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Attributes datatypes.JSONMap `gorm:"column:attributes;type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// NewProfile builds a profile from a flat payload, dropping reserved keys from the attributes
func NewProfile(email string, payload map[string]any) *Profile {
	return &Profile{Email: email, Attributes: CleanProfileAttributes(payload)}
}

// CleanProfileAttributes copies attrs without the keys owned by the store
func CleanProfileAttributes(attrs map[string]any) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	for _, k := range profileReservedKeys {
		delete(out, k)
	}
	return out
}

// MarshalJSON flattens the attribute bag into the profile object
func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Attributes)+4)
	for k, v := range p.Attributes {
		out[k] = v
	}
	if p.ID != "" {
		out["_id"] = p.ID
	}
	out["email"] = p.Email
	if !p.CreatedAt.IsZero() {
		out["createdAt"] = p.CreatedAt
	}
	if !p.UpdatedAt.IsZero() {
		out["updatedAt"] = p.UpdatedAt
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a flat profile object
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Profile{}
	if id, ok := raw["_id"].(string); ok {
		p.ID = id
	}
	if email, ok := raw["email"].(string); ok {
		p.Email = email
	}
	if s, ok := raw["createdAt"].(string); ok {
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, s)
	}
	if s, ok := raw["updatedAt"].(string); ok {
		p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, s)
	}
	p.Attributes = CleanProfileAttributes(raw)
	return nil
}
