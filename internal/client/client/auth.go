package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/common"
)

func (c *HTTPClient) WxLogin(ctx context.Context, code string) (models.TokenResponse, error) {
	var tok models.TokenResponse
	if strings.TrimSpace(code) == "" {
		return tok, fmt.Errorf("%w: login code is empty", common.ErrInvalidInput)
	}
	err := c.send(ctx, http.MethodPost, "/auth/wx-login", map[string]string{"code": code}, &tok)
	return tok, err
}

func (c *HTTPClient) AdminLogin(ctx context.Context, phone, password string) (models.TokenResponse, error) {
	var tok models.TokenResponse
	body := struct {
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}{phone, password}
	if err := c.check(body); err != nil {
		return tok, err
	}
	err := c.send(ctx, http.MethodPost, "/auth/admin-login", body, &tok)
	return tok, err
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.get(ctx, "/auth/me", nil, &u)
	return u, err
}

// Ping is a single probe without retries; the online watcher polls it.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}
