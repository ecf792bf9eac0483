// Package telegram implements the AppraiserNotifier port against the Telegram
// Bot API. Recipients are resolved from the users table at send time, so an
// appraiser registered a moment ago is already included.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"appraise/internal/core/domain/model/user"

	"gorm.io/gorm"
)

const sendTimeout = 10 * time.Second

// Notifier delivers order notifications to every registered appraiser
// via the Telegram sendMessage endpoint.
type Notifier struct {
	db     *gorm.DB
	client *http.Client
	apiURL string
	token  string
	logger *slog.Logger
}

// NewNotifier creates a Telegram notifier. apiURL is the Bot API base
// (https://api.telegram.org in production, a local stub in tests).
func NewNotifier(db *gorm.DB, apiURL, token string, logger *slog.Logger) *Notifier {
	return &Notifier{
		db:     db,
		client: &http.Client{Timeout: sendTimeout},
		apiURL: apiURL,
		token:  token,
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// NotifyAppraisers sends the message, suffixed with the order reference, to
// every user holding the APPRAISER role. Per-recipient failures are logged
// and swallowed; the returned error only reports a failure to resolve the
// recipient list.
func (n *Notifier) NotifyAppraisers(ctx context.Context, message string, orderID int64) error {
	var chatIDs []int64
	err := n.db.WithContext(ctx).
		Raw(`SELECT telegram_id FROM users WHERE role = ?`, int(user.Appraiser)).
		Scan(&chatIDs).Error
	if err != nil {
		return err
	}

	text := fmt.Sprintf("%s\nOrder ID: %d", message, orderID)
	for _, chatID := range chatIDs {
		if sendErr := n.send(ctx, chatID, text); sendErr != nil {
			n.logger.Warn("failed to notify appraiser",
				"chatId", chatID,
				"orderId", orderID,
				"error", sendErr)
		}
	}

	return nil
}

func (n *Notifier) send(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}
