package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the provider's production API endpoint.
const DefaultBaseURL = "https://api.twilio.com"

// Message is the provider's response to a send request.
type Message struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
	From   string `json:"from"`
}

// Sender delivers WhatsApp messages. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendWhatsApp(ctx context.Context, to, body string) (*Message, error)
}

// HTTPClient implements Sender via the provider's Messages API.
type HTTPClient struct {
	baseURL    *url.URL
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a messaging client. from is the sending WhatsApp
// number, with or without the "whatsapp:" prefix.
func NewHTTPClient(baseURL, accountSID, authToken, from string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse twilio url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("twilio url must be absolute")
	}
	return &HTTPClient{
		baseURL:    parsed,
		accountSID: accountSID,
		authToken:  authToken,
		from:       whatsAppAddress(from),
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// SendWhatsApp delivers a single message to the given E.164 number.
func (c *HTTPClient) SendWhatsApp(ctx context.Context, to, body string) (*Message, error) {
	endpoint := c.baseURL.JoinPath("/2010-04-01/Accounts/" + c.accountSID + "/Messages.json")

	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", whatsAppAddress(to))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("twilio request failed",
			slog.String("to", to),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(raw)),
		)
		return nil, fmt.Errorf("twilio error: %s", resp.Status)
	}

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
