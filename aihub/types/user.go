package types

type AuthProvider string

const (
	ProviderGoogle    AuthProvider = "google"
	ProviderMicrosoft AuthProvider = "microsoft"
	ProviderFacebook  AuthProvider = "facebook"
)

type Identity struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Avatar   string       `json:"avatar,omitempty"`
	Provider AuthProvider `json:"provider"`
	Plan     string       `json:"plan"`
}
