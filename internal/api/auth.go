package api

import (
	"context"
	"fmt"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// Credentials is a login or signup payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupPayload struct {
	Credentials
	Role string `json:"role"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var out loginResponse
	if err := c.send(ctx, "POST", "/auth/login", creds, &out); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return out.AccessToken, nil
}

// Signup creates an account with the given role. The caller logs in
// afterwards; signup itself returns no token.
func (c *Client) Signup(ctx context.Context, creds Credentials, role board.Role) error {
	payload := signupPayload{Credentials: creds, Role: string(role)}
	if err := c.send(ctx, "POST", "/auth/signup", payload, nil); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

// Me returns the authenticated account, including its role.
func (c *Client) Me(ctx context.Context) (board.User, error) {
	var out board.User
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return board.User{}, fmt.Errorf("me: %w", err)
	}
	return out, nil
}
