package profile

// SaveProfileRequest is an arbitrary attribute bag keyed by email
type SaveProfileRequest map[string]any

// Email returns the email attribute when it is a non-empty string
func (r SaveProfileRequest) Email() string {
	email, _ := r["email"].(string)
	return email
}
