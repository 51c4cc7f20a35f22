package notification

import (
	"context"
	"fmt"

	"github.com/crechehub/agendaservice/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the staff chat. With no token or
// chat id configured it stays constructed but silent, so wiring never branches.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram not configured, booking notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, child *domain.Child, class *domain.ClassGroup) {
	text := fmt.Sprintf(
		"*Novo agendamento*\n\nCriança: %s\nTurma: %s\nPeríodo: %s a %s",
		child.Name, class.Name, booking.StartDate.BR(), booking.EndDate.BR(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, child *domain.Child, class *domain.ClassGroup) {
	text := fmt.Sprintf(
		"*Agendamento cancelado*\n\nCriança: %s\nTurma: %s\nPeríodo: %s a %s",
		child.Name, class.Name, booking.StartDate.BR(), booking.EndDate.BR(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
