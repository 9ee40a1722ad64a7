package cometchat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client sends text messages through the CometChat REST API. It keeps a very
// small surface area tailored to our needs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	apiKey     string
}

func NewClient(baseURL, appID, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		apiKey:     apiKey,
	}
}

type sendMessageRequest struct {
	Receiver     string      `json:"receiver"`
	ReceiverType string      `json:"receiverType"`
	Category     string      `json:"category"`
	Type         string      `json:"type"`
	Data         messageData `json:"data"`
}

type messageData struct {
	Text string `json:"text"`
}

// SendText delivers a text message to a user or group.
func (c *Client) SendText(ctx context.Context, receiver, receiverType, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		Receiver:     receiver,
		ReceiverType: receiverType,
		Category:     "message",
		Type:         "text",
		Data:         messageData{Text: text},
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("appid", c.appID)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cometchat send failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}
