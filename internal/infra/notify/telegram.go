package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goodfaith/exteriors-backend/internal/domain/leads"
	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

// Notifier pushes lead and quote alerts to the sales team's Telegram
// chat. Best-effort only: a failed notification is logged, never
// surfaced to the request that triggered it.
type Notifier struct {
	api       *tgbotapi.BotAPI
	log       *slog.Logger
	adminChat int64
}

// New builds a Notifier, or returns nil when no token is configured —
// callers treat a nil Notifier as "notifications disabled".
func New(token string, adminChatID int64, log *slog.Logger) *Notifier {
	if token == "" || adminChatID == 0 {
		return nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Warn("telegram notifier disabled", "err", err)
		return nil
	}
	return &Notifier{api: api, log: log, adminChat: adminChatID}
}

func (n *Notifier) send(text string) {
	if n == nil {
		return
	}
	if _, err := n.api.Send(tgbotapi.NewMessage(n.adminChat, text)); err != nil {
		n.log.Warn("telegram send failed", "err", err)
	}
}

func (n *Notifier) LeadCreated(l *leads.Lead) {
	if n == nil || l == nil {
		return
	}
	n.send(fmt.Sprintf("New lead #%d: %s\nPhone: %s\nEmail: %s\nSource: %s",
		l.ID, l.Name, l.Phone, l.Email, l.Source))
}

func (n *Notifier) QuoteCreated(quoteID, customer string, total float64) {
	if n == nil {
		return
	}
	n.send(fmt.Sprintf("Quote %s created for %s: %s",
		quoteID, customer, pricing.FormatPrice(total, false)))
}
