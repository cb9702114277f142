// Package whatsapp sends text messages through the WhatsApp Business Cloud
// (Facebook Graph) API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/config"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Client posts messages on behalf of one business phone number.
type Client struct {
	baseURL       string
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
	log           *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.WhatsAppConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		accessToken:   cfg.AccessToken,
		phoneNumberID: cfg.PhoneNumberID,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		log:           logger.With("adapter", "whatsapp"),
	}
}

// Send delivers a text message and returns the provider message id.
// to must already be digits only.
func (c *Client) Send(ctx context.Context, to, text string) (string, error) {
	if c.accessToken == "" || c.phoneNumberID == "" {
		return "", fmt.Errorf("whatsapp: %w", domain.ErrNotConfigured)
	}

	payload, err := json.Marshal(apiMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             apiText{Body: text},
	})
	if err != nil {
		return "", fmt.Errorf("whatsapp: encode request: %w", err)
	}

	reqURL := c.baseURL + "/" + c.phoneNumberID + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("whatsapp: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("whatsapp: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("whatsapp: read body: %w", err)
	}

	var out apiMessageResponse
	_ = json.Unmarshal(body, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil {
			if out.Error.Message != "" {
				msg = out.Error.Message
			} else if out.Error.ErrorUserMsg != "" {
				msg = out.Error.ErrorUserMsg
			}
		}
		return "", fmt.Errorf("whatsapp: api error (status %d): %s", resp.StatusCode, msg)
	}

	if len(out.Messages) == 0 {
		return "", fmt.Errorf("whatsapp: response has no message id")
	}

	c.log.InfoContext(ctx, "whatsapp message sent", slog.String("message_id", out.Messages[0].ID))
	return out.Messages[0].ID, nil
}
