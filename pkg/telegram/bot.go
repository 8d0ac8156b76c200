package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Bot is a minimal Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a Bot for token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL points the bot at a different API base, used by tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers webhookURL as the update destination.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	if err := b.call(ctx, "setWebhook", map[string]string{"url": webhookURL}); err != nil {
		return fmt.Errorf("telegram setWebhook: %w", err)
	}
	return nil
}

// SendMessage sends plain text to chatID.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends text with an optional parse mode such as Markdown.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error {
	payload := SendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode}
	if err := b.call(ctx, "sendMessage", payload); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var apiResp APIResponse
	if jsonErr := json.Unmarshal(raw, &apiResp); jsonErr != nil {
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK || !apiResp.OK {
		return fmt.Errorf("API error %d: %s", resp.StatusCode, apiResp.Description)
	}
	return nil
}
