package types

type LoginRequest struct {
	Provider string `json:"provider"`
}
