// aihub/controllers/auth.go
package controllers

import (
	"aihub/aihub/auth"
	"aihub/aihub/types"
)

type AuthController struct {
	auth *auth.Service
}

func NewAuthController(authSvc *auth.Service) *AuthController {
	return &AuthController{auth: authSvc}
}

type LoginResponse struct {
	Token    string         `json:"token"`
	Identity types.Identity `json:"identity"`
}

func (c *AuthController) Login(provider string) (LoginResponse, error) {
	identity, err := c.auth.SignIn(types.AuthProvider(provider))
	if err != nil {
		return LoginResponse{}, err
	}
	token, err := c.auth.IssueToken(identity)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{Token: token, Identity: identity}, nil
}

func (c *AuthController) Logout() {
	c.auth.SignOut()
}

func (c *AuthController) Current() (types.Identity, bool) {
	return c.auth.CurrentIdentity()
}
