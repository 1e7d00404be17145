package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// Notifier pushes a digest of high-severity alerts to a Telegram chat.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier authenticates the bot token against the Telegram API.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

// PublishAlerts sends one message listing the High-severity alerts of the
// run. Nothing is sent when no alert qualifies.
func (n *Notifier) PublishAlerts(_ context.Context, alerts []domain.Alert) error {
	message := buildDigest(alerts)
	if message == "" {
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, message)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("telegram: send digest: %w", err)
	}
	return nil
}

func buildDigest(alerts []domain.Alert) string {
	var sb strings.Builder
	for _, alert := range alerts {
		if alert.Severity != domain.RiskHigh {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString("🚨 High-severity supply chain alerts\n\n")
		}
		fmt.Fprintf(&sb, "• %s — %s (%s)\n", alert.Supplier, alert.Message, alert.Timestamp)
	}
	return sb.String()
}
