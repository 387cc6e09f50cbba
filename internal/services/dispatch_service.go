package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"saferide/internal/models"
)

// DispatchService pushes new-order notifications to a dispatcher Telegram
// chat. Like translation, this is best-effort: a failed notification is
// logged and never fails order creation.
type DispatchService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewDispatchService returns nil when the bot is not configured; callers
// treat a nil service as "notifications disabled".
func NewDispatchService(botToken string, dispatchChatID int64) *DispatchService {
	if botToken == "" || dispatchChatID == 0 {
		log.Printf("[dispatch] telegram not configured, order notifications disabled")
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[dispatch] telegram bot init failed, order notifications disabled: %v", err)
		return nil
	}
	return &DispatchService{bot: bot, chatID: dispatchChatID}
}

func (d *DispatchService) NotifyNewOrder(order *models.Order) {
	if d == nil || d.bot == nil {
		return
	}
	text := fmt.Sprintf(
		"New order #%d\nFrom: %s\nTo: %s\nSender: %s",
		order.ID, order.Origin, order.Destination, order.SenderName,
	)
	msg := tgbotapi.NewMessage(d.chatID, text)
	if _, err := d.bot.Send(msg); err != nil {
		log.Printf("[dispatch] notify failed for order_id=%d: %v", order.ID, err)
	}
}
