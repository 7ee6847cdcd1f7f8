package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// UserClient fetches user details from the user service.
type UserClient struct {
	serviceClient
}

func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{serviceClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		service:    "user-service",
	}}
}

func (c *UserClient) FetchUser(ctx context.Context, userID int) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/api/users/%d", c.baseURL, userID)
	return c.fetch(ctx, url, fmt.Sprintf("user %d not found", userID))
}
