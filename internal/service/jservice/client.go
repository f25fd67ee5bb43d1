package jservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://jservice.io"
	defaultTimeout = 30 * time.Second
)

// QuestionData представляет запись вопроса в ответе jService API
type QuestionData struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

// Client предоставляет доступ к jService API. Пагинации у API нет,
// повторные вызовы могут возвращать пересекающиеся наборы вопросов
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// FetchQuestions запрашивает count случайных вопросов
func (c *Client) FetchQuestions(ctx context.Context, count int) ([]QuestionData, error) {
	url := fmt.Sprintf("%s/api/random?count=%d", c.baseURL, count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call jService API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jService API returned status %d", resp.StatusCode)
	}

	var data []QuestionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode jService response: %w", err)
	}

	return data, nil
}
