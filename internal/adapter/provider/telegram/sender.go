// Package telegram posts plain-text messages to a Telegram chat.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"gopkg.in/telebot.v3"

	"github.com/heartmarshall/fieldreports-backend/internal/config"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Sender sends messages to one configured chat. It never polls for updates.
type Sender struct {
	bot    *telebot.Bot
	chatID int64
	log    *slog.Logger
}

// NewSender creates a Sender. apiURL overrides the Bot API endpoint and is
// empty in production.
func NewSender(cfg config.TelegramConfig, apiURL string, logger *slog.Logger) (*Sender, error) {
	if cfg.BotToken == "" || cfg.ChatID == 0 {
		return nil, fmt.Errorf("telegram: %w", domain.ErrNotConfigured)
	}

	bot, err := telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   cfg.BotToken,
		Client:  &http.Client{Timeout: cfg.Timeout},
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}

	return &Sender{
		bot:    bot,
		chatID: cfg.ChatID,
		log:    logger.With("adapter", "telegram"),
	}, nil
}

// Send posts text to the configured chat.
func (s *Sender) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := s.bot.Send(&telebot.Chat{ID: s.chatID}, text, &telebot.SendOptions{DisableWebPagePreview: true})
	if err != nil {
		return fmt.Errorf("telegram: send: %w", err)
	}

	s.log.InfoContext(ctx, "telegram message sent", slog.Int("message_id", msg.ID))
	return nil
}
