package rest

import (
	"context"
	"fmt"
	"net/http"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
)

// Login calls POST /auth/login and returns the bearer token.
// A 2xx response without a token yields a *repository.ParseError wrapping
// repository.ErrMissingToken.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (string, error) {
	var resp loginResp
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return "", err
	}
	if resp.Data == nil || resp.Data.Token == "" {
		return "", &repository.ParseError{Op: "POST /auth/login", Err: repository.ErrMissingToken}
	}
	return resp.Data.Token, nil
}

// Register calls POST /auth/register. The response body is not used.
func (c *Client) Register(ctx context.Context, reg model.Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register", reg, nil)
}

// Me calls GET /auth/me.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var resp meResp
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return model.User{}, err
	}
	if resp.Data != nil {
		return *resp.Data, nil
	}
	if resp.Username == "" {
		return model.User{}, &repository.ParseError{Op: "GET /auth/me", Err: fmt.Errorf("no user in response")}
	}
	return resp.User, nil
}
