package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/favkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, username, password string) error {
	req := api.RegisterRequest{Username: username, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/api/register", "", req, nil); err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	return nil
}

// Login выполняет аутентификацию и возвращает bearer токен
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	req := api.LoginRequest{Username: username, Password: password}

	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/login", "", req, &resp); err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}

	if resp.Token == "" {
		return "", fmt.Errorf("server returned empty token")
	}

	return resp.Token, nil
}

// ListFavorites возвращает избранное текущего пользователя
func (c *Client) ListFavorites(ctx context.Context, token string) ([]string, error) {
	var resp api.FavoritesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/favs", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list favorites request failed: %w", err)
	}
	return resp.Favs, nil
}

// AddFavorite добавляет идентификатор в избранное
func (c *Client) AddFavorite(ctx context.Context, token, id string) error {
	path := "/api/favs/" + id
	if err := c.doRequest(ctx, http.MethodPost, path, token, nil, nil); err != nil {
		return fmt.Errorf("add favorite request failed: %w", err)
	}
	return nil
}

// RemoveFavorite удаляет идентификатор из избранного
func (c *Client) RemoveFavorite(ctx context.Context, token, id string) error {
	path := "/api/favs/" + id
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("remove favorite request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
// Токен передается в Authorization как есть, без префикса схемы
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Сервер отвечает ошибками в форме {"message": ...}
		var errResp api.MessageResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
