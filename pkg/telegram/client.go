// Package telegram is a minimal JSON client for the Telegram Bot API,
// covering only the methods the confirmation workflow needs.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Config holds Telegram Bot API connection details.
type Config struct {
	Token   string
	BaseURL string // defaults to the public Bot API endpoint
}

// Client talks to the Telegram Bot API over HTTPS.
type Client struct {
	apiURL string
	http   *http.Client
}

// NewClient creates a new Telegram Bot API client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiURL: fmt.Sprintf("%s/bot%s", baseURL, cfg.Token),
		// Timeout must exceed the getUpdates long-poll window.
		http: &http.Client{Timeout: 40 * time.Second},
	}
}

// InlineButton is one inline-keyboard button.
type InlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// Chat identifies a Telegram chat.
type Chat struct {
	ID int64 `json:"id"`
}

// Message is an incoming or referenced chat message.
type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// CallbackQuery is an inline-keyboard button press.
type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	Message *Message `json:"message"`
}

// Update is one item from getUpdates or a webhook delivery.
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// call POSTs a JSON payload to a Bot API method and decodes the result.
func (c *Client) call(method string, payload interface{}, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	resp, err := c.http.Post(c.apiURL+"/"+method, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram API error on %s: %s", method, apiResp.Description)
	}
	if result != nil {
		if err := json.Unmarshal(apiResp.Result, result); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

// SendMessage sends an HTML-formatted text message to a chat.
func (c *Client) SendMessage(chatID, text string) error {
	return c.call("sendMessage", map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}, nil)
}

// SendMessageWithKeyboard sends a message with an inline keyboard.
func (c *Client) SendMessageWithKeyboard(chatID, text string, buttons [][]InlineButton) error {
	return c.call("sendMessage", map[string]interface{}{
		"chat_id":      chatID,
		"text":         text,
		"parse_mode":   "HTML",
		"reply_markup": map[string]interface{}{"inline_keyboard": buttons},
	}, nil)
}

// EditMessageText replaces the text (and keyboard) of an existing
// message in place.
func (c *Client) EditMessageText(chatID string, messageID int64, text string, buttons [][]InlineButton) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if buttons != nil {
		payload["reply_markup"] = map[string]interface{}{"inline_keyboard": buttons}
	}
	return c.call("editMessageText", payload, nil)
}

// SendPhoto sends a photo by URL with an HTML caption.
func (c *Client) SendPhoto(chatID, photoURL, caption string) error {
	return c.call("sendPhoto", map[string]interface{}{
		"chat_id":    chatID,
		"photo":      photoURL,
		"caption":    caption,
		"parse_mode": "HTML",
	}, nil)
}

// AnswerCallbackQuery acknowledges a button press so the client stops
// showing its loading state.
func (c *Client) AnswerCallbackQuery(callbackQueryID string) error {
	return c.call("answerCallbackQuery", map[string]interface{}{
		"callback_query_id": callbackQueryID,
	}, nil)
}

// GetUpdates long-polls for updates with IDs >= offset.
func (c *Client) GetUpdates(offset int64, timeoutSec int) ([]Update, error) {
	var updates []Update
	err := c.call("getUpdates", map[string]interface{}{
		"offset":  offset,
		"timeout": timeoutSec,
	}, &updates)
	if err != nil {
		return nil, err
	}
	return updates, nil
}
