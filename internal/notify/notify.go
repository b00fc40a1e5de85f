package notify

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bistroboss/internal/model"
)

// Notifier tells restaurant staff about recorded payments.
type Notifier interface {
	PaymentRecorded(ctx context.Context, payment *model.Payment) error
}

// Sender is the subset of the Telegram bot API the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts payment notifications to an admin chat.
type Telegram struct {
	sender Sender
	chatID int64
}

// NewTelegram connects a bot with the token and targets chatID.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return NewTelegramWithSender(bot, chatID), nil
}

// NewTelegramWithSender builds a notifier over an existing sender.
func NewTelegramWithSender(sender Sender, chatID int64) *Telegram {
	return &Telegram{sender: sender, chatID: chatID}
}

// PaymentRecorded sends a summary of the payment to the admin chat.
func (t *Telegram) PaymentRecorded(ctx context.Context, payment *model.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(t.chatID, FormatPayment(payment))
	if _, err := t.sender.Send(msg); err != nil {
		return fmt.Errorf("send payment notification: %w", err)
	}
	return nil
}

// FormatPayment renders the admin message for a payment.
func FormatPayment(payment *model.Payment) string {
	var b strings.Builder
	b.WriteString("New order paid\n")
	fmt.Fprintf(&b, "Customer: %s\n", payment.Email)
	fmt.Fprintf(&b, "Amount: $%.2f\n", payment.Price)
	fmt.Fprintf(&b, "Items: %d\n", len(payment.CartIDs))
	if payment.TransactionID != "" {
		fmt.Fprintf(&b, "Transaction: %s\n", payment.TransactionID)
	}
	fmt.Fprintf(&b, "Status: %s", payment.Status)
	return b.String()
}
