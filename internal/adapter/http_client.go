package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nmaksimov/userdir/internal/utils"
	"github.com/nmaksimov/userdir/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpDirectoryClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPDirectoryClient(cfg HTTPClientConfig) DirectoryClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpDirectoryClient{client: cli}
}

func (h *httpDirectoryClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpDirectoryClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpDirectoryClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	// the server carries the issued token both in the Authorization
	// response header and in the JSON body; prefer the header
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		var tokenResponse models.TokenResponse
		if err = json.Unmarshal(resp.Body(), &tokenResponse); err != nil {
			return "", fmt.Errorf("decode login response: %w", err)
		}
		token = tokenResponse.Token
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpDirectoryClient) CreateUsers(ctx context.Context, request models.CreateUsersRequest) (models.CreatedUsersResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/users")
	if err != nil {
		return models.CreatedUsersResponse{}, fmt.Errorf("create users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreatedUsersResponse{}, err
	}

	var created models.CreatedUsersResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.CreatedUsersResponse{}, fmt.Errorf("decode create users response: %w", err)
	}

	return created, nil
}

func (h *httpDirectoryClient) ListActive(ctx context.Context) ([]models.UserSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/active")
	if err != nil {
		return nil, fmt.Errorf("list active request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var summaries []models.UserSummary
	if err = json.Unmarshal(resp.Body(), &summaries); err != nil {
		return nil, fmt.Errorf("decode list active response: %w", err)
	}

	return summaries, nil
}

func (h *httpDirectoryClient) GetUser(ctx context.Context, login string) (models.UserProfile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/" + login)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode get user response: %w", err)
	}

	return profile, nil
}

func (h *httpDirectoryClient) GetSelf(ctx context.Context, login, password string) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("login", login).
		SetQueryParam("password", password).
		Get("/api/users/self")
	if err != nil {
		return models.User{}, fmt.Errorf("get self request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode get self response: %w", err)
	}

	return user, nil
}

func (h *httpDirectoryClient) OlderThan(ctx context.Context, years int) ([]models.AgedUser, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/users/older-than/%d", years))
	if err != nil {
		return nil, fmt.Errorf("older-than request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var agedUsers []models.AgedUser
	if err = json.Unmarshal(resp.Body(), &agedUsers); err != nil {
		return nil, fmt.Errorf("decode older-than response: %w", err)
	}

	return agedUsers, nil
}

func (h *httpDirectoryClient) UpdateDetails(ctx context.Context, userID string, request models.UpdateDetailsRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/api/user/" + userID + "/details")
	if err != nil {
		return fmt.Errorf("update details request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDirectoryClient) UpdatePassword(ctx context.Context, userID string, request models.UpdatePasswordRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/api/user/" + userID + "/password")
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDirectoryClient) UpdateLogin(ctx context.Context, userID string, request models.UpdateLoginRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/api/user/" + userID + "/login")
	if err != nil {
		return fmt.Errorf("update login request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDirectoryClient) DeleteUser(ctx context.Context, login string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/users/" + login)
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDirectoryClient) RestoreUser(ctx context.Context, login string) error {
	resp, err := h.authedRequest(ctx).Put("/api/users/" + login + "/restore")
	if err != nil {
		return fmt.Errorf("restore user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpDirectoryClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
